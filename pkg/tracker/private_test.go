package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListConversionsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/users/conversions", r.URL.Path)
		assert.Equal(t, "6", r.URL.Query().Get("goal_type_id"))
		assert.Equal(t, "abc,def", r.URL.Query().Get("hash"))

		json.NewEncoder(w).Encode(ConversionPage{
			Data:  []map[string]interface{}{{"id": float64(1)}},
			Total: 1,
		})
	}))
	defer server.Close()

	api := NewPrivateAPI(server.URL, "secret-token", 5*time.Second)
	page, err := api.ListConversions(context.Background(), ConversionQuery{
		GoalTypeID: GoalTypeDeposit,
		Hashes:     []string{"abc", "def"},
	})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 1, page.Total)
}

func TestCreateConversionsLimit(t *testing.T) {
	api := NewPrivateAPI("http://unused", "token", time.Second)

	batch := make([]ConversionInput, 101)
	_, err := api.CreateConversions(context.Background(), batch)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum 100")
}

func TestCreateConversionsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Conversions []ConversionInput `json:"conversions"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Conversions, 1)
		assert.Equal(t, "hash-1", body.Conversions[0].Hash)
		assert.Equal(t, GoalTypeRegistration, body.Conversions[0].GoalTypeID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"conversions": []map[string]interface{}{{"id": 10}},
		})
	}))
	defer server.Close()

	api := NewPrivateAPI(server.URL, "token", 5*time.Second)
	out, err := api.CreateConversions(context.Background(), []ConversionInput{
		{Hash: "hash-1", GoalTypeID: GoalTypeRegistration, Unique: "API"},
	})

	require.NoError(t, err)
	assert.NotNil(t, out["conversions"])
}

func TestAPIErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "hash is invalid"})
	}))
	defer server.Close()

	api := NewPrivateAPI(server.URL, "token", 5*time.Second)
	_, err := api.GetConversion(context.Background(), 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash is invalid")
}

func TestGetClickScansFirstPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/affiliates/clicks", r.URL.Path)
		assert.Equal(t, "200", r.URL.Query().Get("per_page"))

		json.NewEncoder(w).Encode(ClickPage{
			Data: []Click{
				{ID: 7, Hash: "hash-7"},
				{ID: 9, Hash: "hash-9"},
			},
			Total: 2,
		})
	}))
	defer server.Close()

	api := NewPrivateAPI(server.URL, "token", 5*time.Second)

	click, err := api.GetClick(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, click)
	assert.Equal(t, "hash-9", click.Hash)

	missing, err := api.GetClick(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHashByClickID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ClickPage{Data: []Click{{ID: 3, Hash: "the-hash"}}})
	}))
	defer server.Close()

	api := NewPrivateAPI(server.URL, "token", 5*time.Second)

	hash, err := api.HashByClickID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "the-hash", hash)

	hash, err = api.HashByClickID(context.Background(), 44)
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestCreateAffiliateConversionDeduplicates(t *testing.T) {
	var created bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(ConversionPage{
				Data: []map[string]interface{}{{"id": float64(55)}},
			})
			return
		}
		created = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	api := NewPrivateAPI(server.URL, "token", 5*time.Second)
	result, err := api.CreateAffiliateConversion(context.Background(), AffiliateConversionParams{
		ClickHash:  "existing-hash",
		GoalTypeID: GoalTypeRegistration,
	})

	require.NoError(t, err)
	assert.True(t, result.IsDuplicate)
	assert.False(t, created, "must not create when the conversion already exists")
}

func TestCreateAffiliateConversionCreatesWhenMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(ConversionPage{})
			return
		}

		var body struct {
			Conversions []ConversionInput `json:"conversions"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Conversions, 1)
		assert.Equal(t, "API", body.Conversions[0].Unique)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"conversions": []interface{}{map[string]interface{}{"id": float64(77)}},
		})
	}))
	defer server.Close()

	api := NewPrivateAPI(server.URL, "token", 5*time.Second)
	result, err := api.CreateAffiliateConversion(context.Background(), AffiliateConversionParams{
		ClickHash:  "new-hash",
		GoalTypeID: GoalTypeDeposit,
	})

	require.NoError(t, err)
	assert.False(t, result.IsDuplicate)
	require.NotNil(t, result.Conversion)
	assert.Equal(t, float64(77), result.Conversion["id"])
}
