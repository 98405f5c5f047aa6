package tui

import "github.com/izhairtrend/hairtrend/internal/tui/components/footer"

const (
	wheelRows = 3
	pageRows  = 10
)

var (
	homeHints = footer.Hints(
		[2]string{"tab", "focus"},
		[2]string{"enter", "open"},
		[2]string{"1-4", "go"},
		[2]string{"f1-f3/l", "lang"},
		[2]string{"q", "quit"},
	)
	pageHints = footer.Hints(
		[2]string{"esc", "back"},
		[2]string{"h", "home"},
		[2]string{"↑↓", "scroll"},
		[2]string{"f1-f3/l", "lang"},
		[2]string{"q", "quit"},
	)
)
