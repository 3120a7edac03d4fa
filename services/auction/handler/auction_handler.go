package handler

import (
	"fmt"
	"net/http"

	"live-auction/internal/clock"
	model "live-auction/internal/models"
	"live-auction/services/auction/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

// SnapshotReader is the read-only registry surface the listing needs.
type SnapshotReader interface {
	Get(itemID string) (model.Auction, error)
	Snapshot() []model.Auction
}

type AuctionHandler struct {
	store SnapshotReader
	clk   clock.Clock
}

func NewAuctionHandler(store SnapshotReader, clk clock.Clock) *AuctionHandler {
	return &AuctionHandler{store: store, clk: clk}
}

// ListAuctionsHandler handles GET /items. The response carries the
// server's capture time so observers can render deadlines against it;
// each item's status is already recomputed at read time.
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions := h.store.Snapshot()

	resp := helpers.SnapshotResponse{
		ServerTime: h.clk.Now().UnixMilli(),
		Items:      helpers.ProjectAuctions(auctions),
	}

	c.JSON(http.StatusOK, resp)
	helpers.LogSuccess("ListAuctionsHandler", "snapshot served", map[string]any{
		"items_count": len(resp.Items),
	})
}

// GetAuctionHandler handles GET /items/:item_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	a, err := h.store.Get(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.ProjectAuction(a))
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved", map[string]any{
		"item_id": a.ID,
		"status":  string(a.Status),
	})
}
