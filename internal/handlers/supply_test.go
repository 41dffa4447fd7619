package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSuppliesRequiresAuth(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/supplies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListSuppliesOrderedAndOwnerScoped(t *testing.T) {
	r := setupTestRouter(t)

	registerUser(t, r, "a@x.com", "pw123456", "A")
	registerUser(t, r, "b@x.com", "pw123456", "B")
	tokenA := getToken(t, r, "a@x.com", "pw123456")
	tokenB := getToken(t, r, "b@x.com", "pw123456")

	createTag(t, r, "/api/supplies", tokenA, "Brush")
	createTag(t, r, "/api/supplies", tokenA, "Turpentine")
	createTag(t, r, "/api/supplies", tokenB, "Easel")

	supplies := listTags(t, r, "/api/supplies", tokenA)

	require.Len(t, supplies, 2)
	assert.Equal(t, "Turpentine", supplies[0].Name)
	assert.Equal(t, "Brush", supplies[1].Name)
}

func TestListSuppliesAssignedOnly(t *testing.T) {
	r := setupTestRouter(t)

	registerUser(t, r, "a@x.com", "pw123456", "A")
	token := getToken(t, r, "a@x.com", "pw123456")

	assigned := createTag(t, r, "/api/supplies", token, "Canvas")
	createTag(t, r, "/api/supplies", token, "Unused")

	createPainting(t, r, token, gin.H{
		"title":       "Still Life",
		"create_date": "2016-03-04",
		"supplies":    []uint{assigned},
	})
	createPainting(t, r, token, gin.H{
		"title":       "Landscape",
		"create_date": "2016-05-06",
		"supplies":    []uint{assigned},
	})

	supplies := listTags(t, r, "/api/supplies?assigned_only=1", token)

	require.Len(t, supplies, 1)
	assert.Equal(t, assigned, supplies[0].ID)
}

func TestUpdateSupply(t *testing.T) {
	r := setupTestRouter(t)

	registerUser(t, r, "a@x.com", "pw123456", "A")
	token := getToken(t, r, "a@x.com", "pw123456")

	id := createTag(t, r, "/api/supplies", token, "Palete")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/supplies/%d", id), token, gin.H{"name": "Palette"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Palette"`)
}

func TestDeleteSupplyCrossUserIsNotFound(t *testing.T) {
	r := setupTestRouter(t)

	registerUser(t, r, "a@x.com", "pw123456", "A")
	registerUser(t, r, "b@x.com", "pw123456", "B")
	tokenA := getToken(t, r, "a@x.com", "pw123456")
	tokenB := getToken(t, r, "b@x.com", "pw123456")

	id := createTag(t, r, "/api/supplies", tokenA, "Brush")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/supplies/%d", id), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
