// Package site holds the static catalogue content rendered by every view.
package site

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	Brand = "IZ HAIR TREND"

	GallerySize  = 12
	ProductCount = 8

	imageHost        = "images.unsplash.com"
	galleryPhotoID   = "photo-1517836357463-d25dfeac3438"
	productPhotoID   = "photo-1556228453-efd1f2ea2cfe"
	galleryWidth     = 800
	productWidth     = 900
	imageQuality     = 60
	basePriceEUR     = 29
	priceStepEUR     = 5
	productTitleStem = "Pro Tool"
)

type GalleryItem struct {
	Index int
	URL   string
}

type Product struct {
	Title    string
	PriceEUR int
	ImageURL string
}

// Price formats the placeholder price the way the shop shows it, e.g. "34€".
func (p Product) Price() string {
	return strconv.Itoa(p.PriceEUR) + "€"
}

type Course struct {
	Title       string
	Description string
}

type ContactDetails struct {
	Address string
	Phone   string
	Handle  string
}

// ImageURL builds a hosted image URL; sig only varies the cache key.
func ImageURL(photoID string, width, sig int) string {
	q := url.Values{}
	q.Set("auto", "format")
	q.Set("fit", "crop")
	q.Set("w", strconv.Itoa(width))
	q.Set("q", strconv.Itoa(imageQuality))
	q.Set("sig", strconv.Itoa(sig))
	u := url.URL{
		Scheme:   "https",
		Host:     imageHost,
		Path:     "/" + photoID,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func Gallery() []GalleryItem {
	items := make([]GalleryItem, GallerySize)
	for i := range items {
		items[i] = GalleryItem{
			Index: i,
			URL:   ImageURL(galleryPhotoID, galleryWidth, i),
		}
	}
	return items
}

func Products() []Product {
	products := make([]Product, ProductCount)
	for i := range products {
		products[i] = Product{
			Title:    fmt.Sprintf("%s %d", productTitleStem, i+1),
			PriceEUR: basePriceEUR + i*priceStepEUR,
			ImageURL: ImageURL(productPhotoID, productWidth, i),
		}
	}
	return products
}

func Courses() []Course {
	return []Course{
		{Title: "Cut & Style Masterclass", Description: "8h intensive, model included"},
		{Title: "Color & Shine", Description: "Balayage, toning, aftercare"},
		{Title: "Bridal Perfection", Description: "Long‑lasting updos & accessories"},
	}
}

func Contacts() ContactDetails {
	return ContactDetails{
		Address: "Klaipėda, Lithuania",
		Phone:   "+370 ••• •• •••",
		Handle:  "@irinazilina.hairtrend",
	}
}
