package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewEndpoints(t *testing.T) {
	server, db := newTestServer(t)
	user := seedTestUser(t, db, "reader@example.com")
	book := seedTestBook(t, db, "The Eye of the Heron")

	t.Run("empty review is a 400", func(t *testing.T) {
		recorder := performRequest(t, server, http.MethodPost, "/api/reviews",
			gin.H{"user_id": user.ID, "book_id": book.ID})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "missing review!", decodeBody(t, recorder)["error"])
	})

	t.Run("first review responds 201, replacement 200", func(t *testing.T) {
		recorder := performRequest(t, server, http.MethodPost, "/api/reviews",
			gin.H{"user_id": user.ID, "book_id": book.ID, "comment": "good", "rating": 4})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		recorder = performRequest(t, server, http.MethodPost, "/api/reviews",
			gin.H{"user_id": user.ID, "book_id": book.ID, "comment": "great", "rating": 5})
		assert.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody(t, recorder)
		assert.Equal(t, "great", body["comment"])
		assert.EqualValues(t, 5, body["rating"])
	})

	t.Run("replies require an existing review", func(t *testing.T) {
		recorder := performRequest(t, server, http.MethodPost, "/api/replies",
			gin.H{"user_id": user.ID, "comment": "hello"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "review not found to add reply!", decodeBody(t, recorder)["error"])
	})

	t.Run("reply lifecycle", func(t *testing.T) {
		recorder := performRequest(t, server, http.MethodGet,
			"/api/reviews/book/"+book.ID, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var reviews []map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reviews))
		require.Len(t, reviews, 1)
		id := reviews[0]["id"].(string)

		recorder = performRequest(t, server, http.MethodPost, "/api/replies",
			gin.H{"user_id": user.ID, "review_id": id, "comment": "agreed"})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		recorder = performRequest(t, server, http.MethodDelete, "/api/replies/"+id, nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "reply deleted successfully!", decodeBody(t, recorder)["message"])

		recorder = performRequest(t, server, http.MethodDelete, "/api/replies/"+id, nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "reply not found!", decodeBody(t, recorder)["error"])
	})
}

func TestBookListingEndpoint(t *testing.T) {
	server, db := newTestServer(t)
	seedTestBook(t, db, "Rocannon's World")
	seedTestBook(t, db, "Planet of Exile")

	recorder := performRequest(t, server, http.MethodGet, "/api/books?limit=1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	metadata := body["metadata"].(map[string]any)
	assert.EqualValues(t, 2, metadata["totalItems"])
	assert.EqualValues(t, 2, metadata["totalPages"])
	assert.EqualValues(t, 1, metadata["currentPage"])
}
