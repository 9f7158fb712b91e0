package scan

import (
	"testing"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
)

func TestReconcileDraft(t *testing.T) {
	def := core.DefaultDraft()

	cases := []struct {
		name string
		in   string
		want core.Draft
	}{
		{"empty input", "", def},
		{"not json", "not json", def},
		{"prose only", "I could not read this receipt, sorry.", def},
		{
			"valid object",
			`{"item":"Family Mart","amount":850,"category":"Shopping"}`,
			core.Draft{Item: "Family Mart", Amount: 850, Category: core.CategoryShopping},
		},
		{
			"fenced json",
			"```json\n{\"item\":\"Family Mart\",\"amount\":850,\"category\":\"Shopping\"}\n```",
			core.Draft{Item: "Family Mart", Amount: 850, Category: core.CategoryShopping},
		},
		{
			"json embedded in prose",
			"Here is the extraction: {\"item\":\"Lawson\",\"amount\":920,\"category\":\"Food\"} hope that helps!",
			core.Draft{Item: "Lawson", Amount: 920, Category: core.CategoryFood},
		},
		{
			"unknown category falls back",
			`{"item":"Seria","amount":330,"category":"Household"}`,
			core.Draft{Item: "Seria", Amount: 330, Category: core.DefaultCategory},
		},
		{
			"case-insensitive category",
			`{"item":"Eneos","amount":5000,"category":"car"}`,
			core.Draft{Item: "Eneos", Amount: 5000, Category: core.CategoryCar},
		},
		{
			"stringified amount",
			`{"item":"Aeon","amount":"1,980","category":"Shopping"}`,
			core.Draft{Item: "Aeon", Amount: 1980, Category: core.CategoryShopping},
		},
		{
			"negative amount ignored",
			`{"item":"Refund","amount":-500,"category":"Food"}`,
			core.Draft{Item: "Refund", Amount: 0, Category: core.CategoryFood},
		},
		{
			"missing fields fall back independently",
			`{"category":"Transport"}`,
			core.Draft{Item: "", Amount: 0, Category: core.CategoryTransport},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ReconcileDraft(c.in); got != c.want {
				t.Errorf("ReconcileDraft(%q) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}

func TestReconcileDraftDefaultIsExact(t *testing.T) {
	got := ReconcileDraft("")
	if got.Item != "" || got.Amount != 0 || got.Category != core.CategoryFood {
		t.Errorf("default draft = %+v, want {\"\", 0, Food}", got)
	}
}
