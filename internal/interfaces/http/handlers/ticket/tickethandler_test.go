package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/usecases"
)

type mockListCommentsExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListCommentsQuery) (*usecases.ListCommentsResult, error)
}

func (m *mockListCommentsExecutor) Execute(ctx context.Context, query usecases.ListCommentsQuery) (*usecases.ListCommentsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

func TestTicketHandler_ListComments_UsesListEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Now().UTC()
	executor := &mockListCommentsExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.ListCommentsQuery) (*usecases.ListCommentsResult, error) {
			assert.Equal(t, uint(5), query.TicketID)
			return &usecases.ListCommentsResult{
				Comments: []usecases.CommentView{
					{ID: 1, TicketID: 5, AuthorID: 3, Content: "Rebooted the print server.", CreatedAt: now, UpdatedAt: now},
					{ID: 2, TicketID: 5, AuthorID: 4, Content: "Jam cleared, monitoring.", CreatedAt: now, UpdatedAt: now},
				},
				Total: 2,
			}, nil
		},
	}

	handler := NewTicketHandler(nil, nil, nil, nil, nil, nil, executor)

	engine := gin.New()
	engine.GET("/api/tickets/:id/comments", handler.ListComments)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/tickets/5/comments", nil)
	engine.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	// same list envelope as ticket listing: items/total/skip/limit
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items []CommentResponse `json:"items"`
			Total int64             `json:"total"`
			Skip  int               `json:"skip"`
			Limit int               `json:"limit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Data.Items, 2)
	assert.Equal(t, "Rebooted the print server.", body.Data.Items[0].Content)
	assert.Equal(t, int64(2), body.Data.Total)
	assert.Equal(t, 0, body.Data.Skip)
	assert.Equal(t, 2, body.Data.Limit)
}
