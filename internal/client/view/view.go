// Package view renders the storefront collections as plain-text tables.
// Summaries are recomputed from the items on every render.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"

	"github.com/ynitaziki/storefront/internal/client/models"
)

const (
	emptyCart      = "Your cart is empty."
	emptyFavorites = "No favorites yet."
	noProducts     = "Nothing found."
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// FormatPrice renders a price with two decimals.
func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// RenderCart writes the cart page: line items, the favorites panel and the
// summary.
func RenderCart(w io.Writer, v models.CartView) error {
	if len(v.Items) == 0 {
		if _, err := fmt.Fprintln(w, emptyCart); err != nil {
			return err
		}
	} else {
		tw := newTable(w)
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
		for _, it := range v.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", it.ID, it.Name, FormatPrice(it.Price), it.Qty, FormatPrice(it.LineTotal()))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(v.Favorites) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Favorites (fave-add <id> to add to cart):")
		if err := RenderFavorites(w, v.Favorites); err != nil {
			return err
		}
	}

	qty, total := models.Summarize(v.Items)
	_, err := fmt.Fprintf(w, "\nQty: %d\nTotal: %s\n", qty, FormatPrice(total))
	return err
}

// RenderFavorites writes a favorites list.
func RenderFavorites(w io.Writer, items []models.FavoriteItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, emptyFavorites)
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	for _, f := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.ID, f.Name, FormatPrice(f.Price))
	}
	return tw.Flush()
}

// RenderProducts writes product cards. Products whose id is in favorites
// are marked with a star.
func RenderProducts(w io.Writer, products []models.Product, favorites map[string]bool) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, noProducts)
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\tID\tNAME\tPRICE")
	for _, p := range products {
		mark := ""
		if favorites[p.ID] {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, p.ID, p.Name, FormatPrice(p.Price))
	}
	return tw.Flush()
}

// RenderProfile writes the profile fields. Images are shown as set or not,
// never as their data.
func RenderProfile(w io.Writer, p models.Profile) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "name\t%s\n", orDash(p.Name))
	fmt.Fprintf(tw, "phone\t%s\n", orDash(p.Phone))
	fmt.Fprintf(tw, "city\t%s\n", orDash(p.City))
	fmt.Fprintf(tw, "avatar\t%s\n", imageState(p.Avatar))
	fmt.Fprintf(tw, "cover\t%s\n", imageState(p.Cover))
	return tw.Flush()
}

// HeaderBadge returns the avatar initial and the title of the logged-in
// user, or two empty strings when nobody is logged in.
func HeaderBadge(username string) (initial, title string) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ""
	}
	r, _ := utf8.DecodeRuneInString(username)
	return string(unicode.ToUpper(r)), username
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func imageState(data string) string {
	if data == "" {
		return "not set"
	}
	if rest, ok := strings.CutPrefix(data, "data:"); ok {
		mime, _, _ := strings.Cut(rest, ";")
		return "set (" + mime + ")"
	}
	return "set"
}
