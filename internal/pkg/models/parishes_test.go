package models

import (
	"testing"
)

func TestThatTheCatalogContainsAllFourteenParishes(t *testing.T) {
	parishes := AllParishes()
	if len(parishes) != 14 {
		t.Errorf("Expected 14 parishes, but got %d", len(parishes))
	}

	if parishes[0] != "Kingston" || parishes[13] != "St. Catherine" {
		t.Errorf("Parish catalog is out of order: %s ... %s", parishes[0], parishes[13])
	}
}

func TestThatParishValidationIsCaseInsensitive(t *testing.T) {
	for _, parish := range []string{"St. Andrew", "st. andrew", "ST. ANDREW", "trelawny"} {
		if !IsValidParish(parish) {
			t.Errorf("%s should be a valid parish", parish)
		}
	}
}

func TestThatUnknownParishesAreRejected(t *testing.T) {
	for _, parish := range []string{"atlantis", "", "St Andrew", "Kingston "} {
		if IsValidParish(parish) {
			t.Errorf("%s should not be a valid parish", parish)
		}
	}
}

func TestThatMutatingTheReturnedCatalogDoesNotAffectTheOriginal(t *testing.T) {
	parishes := AllParishes()
	parishes[0] = "Narnia"

	if AllParishes()[0] != "Kingston" {
		t.Error("AllParishes should return a copy of the catalog")
	}
}
