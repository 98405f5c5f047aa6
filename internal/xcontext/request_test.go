package xcontext

import (
	"testing"

	"github.com/izhairtrend/hairtrend/internal/locale"
)

func TestPage(t *testing.T) {
	t.Parallel()

	// outside a request nothing is recorded and nothing panics
	SetPage(t.Context(), "shop", locale.EN)
	if GetPage(t.Context()) != nil {
		t.Fatal("page without WithPage")
	}

	ctx, p := WithPage(t.Context())
	SetPage(ctx, "shop", locale.LT)
	if p.Route != "shop" || p.Locale != locale.LT {
		t.Errorf("page = %+v", *p)
	}
	if GetPage(ctx) != p {
		t.Error("GetPage returned a different record")
	}
}

func TestRequestValues(t *testing.T) {
	t.Parallel()

	if _, ok := GetRequestID(t.Context()); ok {
		t.Error("request id without SetRequestID")
	}
	if id, _ := GetRequestID(SetRequestID(t.Context(), "abc")); id != "abc" {
		t.Errorf("request id = %q", id)
	}

	if IsShutdownInProgress(t.Context()) {
		t.Error("shutdown flagged on a bare context")
	}
	if !IsShutdownInProgress(SetShutdownInProgress(t.Context(), true)) {
		t.Error("shutdown flag lost")
	}
}
