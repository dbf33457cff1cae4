package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dmitrijs2005/marketplac/internal/common"
	"github.com/stretchr/testify/require"
)

func TestProduct_UnmarshalUsesRemoteFieldNames(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"_id":"1","title":"Desk","price":"$120","image":"http://img/desk.png"}`), &p)
	require.NoError(t, err)
	require.Equal(t, Product{ID: "1", Title: "Desk", Price: "$120", Image: "http://img/desk.png"}, p)
}

func TestListingDraft_Validate(t *testing.T) {
	tests := []struct {
		name  string
		draft ListingDraft
		ok    bool
	}{
		{"complete", ListingDraft{Title: "Desk", Price: "$120", Image: "x.png"}, true},
		{"missing title", ListingDraft{Price: "$120", Image: "x.png"}, false},
		{"missing price", ListingDraft{Title: "Desk", Image: "x.png"}, false},
		{"missing image", ListingDraft{Title: "Desk", Price: "$120"}, false},
		{"empty", ListingDraft{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, common.ErrValidation))
			}
		})
	}
}

func TestListingDraft_Empty(t *testing.T) {
	require.True(t, ListingDraft{}.Empty())
	require.False(t, ListingDraft{Title: "Desk"}.Empty())
}
