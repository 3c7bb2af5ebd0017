package handler

import (
	"go-vidshare-api/common"
	"go-vidshare-api/model"
	"go-vidshare-api/service"
	"net/http"
)

// SubscriptionHandler exposes the subscription toggle and the joined
// subscriber/subscribed-channel listings.
type SubscriptionHandler struct {
	relationships *service.RelationshipService
	stats         *service.StatsService
}

func NewSubscriptionHandler(relationships *service.RelationshipService, stats *service.StatsService) *SubscriptionHandler {
	return &SubscriptionHandler{
		relationships: relationships,
		stats:         stats,
	}
}

// Toggle godoc
// @Summary      Subscribe or unsubscribe to a channel
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  common.AppError "Channel not found"
// @Router       /api/subscriptions/{channelId}/toggle [post]
func (h *SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	channelID, appErr := pathUUID(r, "channelId")
	if appErr != nil {
		return appErr
	}

	outcome, err := h.relationships.ToggleSubscription(r.Context(), userID, channelID)
	if err != nil {
		return mapToggleError(err, "Could not toggle subscription")
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"outcome":    outcome,
		"subscribed": outcome == model.ToggleCreated,
	})
	return nil
}

// Subscribers lists a channel's subscribers with a live count.
func (h *SubscriptionHandler) Subscribers(w http.ResponseWriter, r *http.Request) *common.AppError {
	channelID, appErr := pathUUID(r, "channelId")
	if appErr != nil {
		return appErr
	}

	list, err := h.stats.ChannelSubscribers(r.Context(), channelID)
	if err != nil {
		switch err {
		case service.ErrChannelNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not list subscribers", err)
		}
	}

	writeJSON(w, http.StatusOK, list)
	return nil
}

// SubscribedChannels lists the channels a user is subscribed to.
func (h *SubscriptionHandler) SubscribedChannels(w http.ResponseWriter, r *http.Request) *common.AppError {
	subscriberID, appErr := pathUUID(r, "subscriberId")
	if appErr != nil {
		return appErr
	}

	list, err := h.stats.SubscribedChannels(r.Context(), subscriberID)
	if err != nil {
		switch err {
		case service.ErrChannelNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not list subscribed channels", err)
		}
	}

	writeJSON(w, http.StatusOK, list)
	return nil
}
