package client

import (
	"reflect"
	"testing"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
)

func TestNormalize_RequiresNameAndPhone(t *testing.T) {
	cases := []Input{
		{Name: "  ", Phone: "8888-0000"},
		{Name: "Ana", Phone: ""},
	}
	for _, in := range cases {
		if _, err := Normalize(in); !httperr.IsBusiness(err, "required_field_missing") {
			t.Fatalf("Normalize(%+v) err = %v, want required_field_missing", in, err)
		}
	}

	got, err := Normalize(Input{Name: " Ana ", Phone: " 8888 ", Email: " a@b.cr "})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got.Name != "Ana" || got.Phone != "8888" || got.Email != "a@b.cr" {
		t.Fatalf("got %+v", got)
	}
}

func TestNormalize_Email(t *testing.T) {
	got, err := Normalize(Input{Name: "Ana", Phone: "1", Email: "Ana@Salon.CR"})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got.Email != "ana@salon.cr" {
		t.Fatalf("email = %q, want lowercased", got.Email)
	}

	if _, err := Normalize(Input{Name: "Ana", Phone: "1", Email: "ana at salon"}); !httperr.IsBusiness(err, "invalid_email") {
		t.Fatalf("err = %v, want invalid_email", err)
	}
}

func TestNameKey(t *testing.T) {
	if NameKey("  María Pérez ") != NameKey("maría pérez") {
		t.Fatalf("names should collide")
	}
}

func TestStatsFromCounts(t *testing.T) {
	got := StatsFromCounts(map[string]int64{"confirmed": 2, "pending": 1, "canceled": 1})
	want := Stats{Total: 4, Confirmed: 2, Pending: 1, Canceled: 1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDedupNotes(t *testing.T) {
	raw := []string{"Tinte", "Continuación", "Corte", " ", "Tinte", "Continuación", "Cejas"}

	got := DedupNotes(raw)
	want := []string{"Tinte", "Corte", "Cejas"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
