package handler

import (
	"go-vidshare-api/common"
	"go-vidshare-api/service"
	"net/http"
)

// DashboardHandler exposes the channel rollup endpoints.
type DashboardHandler struct {
	stats *service.StatsService
}

func NewDashboardHandler(stats *service.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// ChannelStats godoc
// @Summary      Get channel statistics
// @Description  Live rollup of video count, subscriber count, total views and total likes across the channel's videos.
// @Tags         dashboard
// @Produce      json
// @Param        channelId path string true "Channel ID"
// @Success      200  {object}  model.ChannelStats
// @Failure      404  {object}  common.AppError "Channel does not exist"
// @Router       /api/channels/{channelId}/stats [get]
func (h *DashboardHandler) ChannelStats(w http.ResponseWriter, r *http.Request) *common.AppError {
	channelID, appErr := pathUUID(r, "channelId")
	if appErr != nil {
		return appErr
	}

	stats, err := h.stats.ChannelStats(r.Context(), channelID)
	if err != nil {
		switch err {
		case service.ErrChannelNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not compute channel stats", err)
		}
	}

	writeJSON(w, http.StatusOK, stats)
	return nil
}
