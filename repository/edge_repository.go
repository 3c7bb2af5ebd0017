// file: repository/edge_repository.go

package repository

import (
	"context"
	"database/sql"
	"errors"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrToggleConflict is returned when a toggle loses a race against a
// concurrent identical toggle: neither the delete nor the insert branch took
// effect. The unique constraint guarantees no duplicate edge was created;
// callers should report a conflict rather than retry blindly.
var ErrToggleConflict = errors.New("edge toggle lost a concurrent race")

// IEdgeRepository defines the contract for the relationship ledger.
type IEdgeRepository interface {
	Toggle(ctx context.Context, actorID, targetID uuid.UUID, kind model.EdgeKind) (model.ToggleOutcome, error)
	Exists(ctx context.Context, actorID, targetID uuid.UUID, kind model.EdgeKind) (bool, error)
	CountByTarget(ctx context.Context, targetID uuid.UUID, kind model.EdgeKind) (int64, error)
	CountByActor(ctx context.Context, actorID uuid.UUID, kind model.EdgeKind) (int64, error)
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*model.ChannelCard, error)
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.ChannelCard, error)
	ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]*model.LikedVideo, error)
	CountLikesOnOwnedVideos(ctx context.Context, ownerID uuid.UUID) (int64, error)
	DeleteByTarget(ctx context.Context, tx *sql.Tx, targetID uuid.UUID, kind model.EdgeKind) error
}

// EdgeRepository implements IEdgeRepository over Postgres. The compound
// unique constraint on (actor_id, target_id, kind) is the persisted invariant
// every method relies on.
type EdgeRepository struct {
	DB *sql.DB
}

func NewEdgeRepository(db *sql.DB) *EdgeRepository {
	return &EdgeRepository{DB: db}
}

// toggleQuery flips the edge in a single statement. The DELETE branch runs
// first; the INSERT branch only fires when nothing was deleted. Keeping both
// branches in one round-trip is what makes concurrent toggles safe: a
// read-then-write pair in application code could observe "absent" twice.
const toggleQuery = `
WITH removed AS (
	DELETE FROM edges
	WHERE actor_id = $1 AND target_id = $2 AND kind = $3
	RETURNING id
), created AS (
	INSERT INTO edges (actor_id, target_id, kind)
	SELECT $1, $2, $3
	WHERE NOT EXISTS (SELECT 1 FROM removed)
	ON CONFLICT (actor_id, target_id, kind) DO NOTHING
	RETURNING id
)
SELECT (SELECT count(*) FROM removed), (SELECT count(*) FROM created)`

// Toggle atomically creates the edge if absent or removes it if present.
func (r *EdgeRepository) Toggle(ctx context.Context, actorID, targetID uuid.UUID, kind model.EdgeKind) (model.ToggleOutcome, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"actor_id":  actorID,
		"target_id": targetID,
		"kind":      kind,
	})
	log.Info("Executing edge toggle query")

	var removed, created int
	err := r.DB.QueryRowContext(ctx, toggleQuery, actorID, targetID, kind).Scan(&removed, &created)
	if err != nil {
		log.WithError(err).Error("Failed to execute edge toggle query")
		return "", err
	}

	switch {
	case removed > 0:
		return model.ToggleRemoved, nil
	case created > 0:
		return model.ToggleCreated, nil
	default:
		// A concurrent toggle inserted the edge between our two branches.
		log.Warn("Edge toggle had no effect; concurrent duplicate insert detected")
		return "", ErrToggleConflict
	}
}

func (r *EdgeRepository) Exists(ctx context.Context, actorID, targetID uuid.UUID, kind model.EdgeKind) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM edges WHERE actor_id = $1 AND target_id = $2 AND kind = $3)`
	err := r.DB.QueryRowContext(ctx, query, actorID, targetID, kind).Scan(&exists)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute edge existence query")
		return false, err
	}
	return exists, nil
}

// CountByTarget counts edges pointing at a target. Always computed live,
// never read from a stored counter.
func (r *EdgeRepository) CountByTarget(ctx context.Context, targetID uuid.UUID, kind model.EdgeKind) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM edges WHERE target_id = $1 AND kind = $2`
	err := r.DB.QueryRowContext(ctx, query, targetID, kind).Scan(&count)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute count edges by target query")
		return 0, err
	}
	return count, nil
}

func (r *EdgeRepository) CountByActor(ctx context.Context, actorID uuid.UUID, kind model.EdgeKind) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM edges WHERE actor_id = $1 AND kind = $2`
	err := r.DB.QueryRowContext(ctx, query, actorID, kind).Scan(&count)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute count edges by actor query")
		return 0, err
	}
	return count, nil
}

// ListSubscribers resolves the actor side of subscription edges against the
// users table, projecting only public profile fields.
func (r *EdgeRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*model.ChannelCard, error) {
	log := logger.Log.WithField("channel_id", channelID)
	log.Info("Executing query to list channel subscribers")

	query := `
		SELECT u.username, u.full_name, u.avatar_url
		FROM edges e
		JOIN users u ON u.id = e.actor_id
		WHERE e.target_id = $1 AND e.kind = $2
		ORDER BY e.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, channelID, model.KindSubscription)
	if err != nil {
		log.WithError(err).Error("Failed to execute list subscribers query")
		return nil, err
	}
	defer rows.Close()

	var cards []*model.ChannelCard
	for rows.Next() {
		var c model.ChannelCard
		if err := rows.Scan(&c.Username, &c.FullName, &c.AvatarURL); err != nil {
			log.WithError(err).Error("Failed to scan subscriber row")
			return nil, err
		}
		cards = append(cards, &c)
	}
	return cards, rows.Err()
}

// ListSubscribedChannels resolves the target side of subscription edges.
func (r *EdgeRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.ChannelCard, error) {
	log := logger.Log.WithField("subscriber_id", subscriberID)
	log.Info("Executing query to list subscribed channels")

	query := `
		SELECT u.username, u.full_name, u.avatar_url, u.cover_image_url
		FROM edges e
		JOIN users u ON u.id = e.target_id
		WHERE e.actor_id = $1 AND e.kind = $2
		ORDER BY e.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, subscriberID, model.KindSubscription)
	if err != nil {
		log.WithError(err).Error("Failed to execute list subscribed channels query")
		return nil, err
	}
	defer rows.Close()

	var cards []*model.ChannelCard
	for rows.Next() {
		var c model.ChannelCard
		if err := rows.Scan(&c.Username, &c.FullName, &c.AvatarURL, &c.CoverImageURL); err != nil {
			log.WithError(err).Error("Failed to scan subscribed channel row")
			return nil, err
		}
		cards = append(cards, &c)
	}
	return cards, rows.Err()
}

// ListLikedVideos joins like edges with the videos they point at.
func (r *EdgeRepository) ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]*model.LikedVideo, error) {
	log := logger.Log.WithField("actor_id", actorID)
	log.Info("Executing query to list liked videos")

	query := `
		SELECT e.created_at, v.id, v.owner_id, v.title, v.thumbnail_url, v.duration, v.views
		FROM edges e
		JOIN videos v ON v.id = e.target_id
		WHERE e.actor_id = $1 AND e.kind = $2
		ORDER BY e.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, actorID, model.KindVideoLike)
	if err != nil {
		log.WithError(err).Error("Failed to execute list liked videos query")
		return nil, err
	}
	defer rows.Close()

	var videos []*model.LikedVideo
	for rows.Next() {
		var lv model.LikedVideo
		if err := rows.Scan(&lv.LikedAt, &lv.VideoID, &lv.OwnerID, &lv.Title, &lv.ThumbnailURL, &lv.Duration, &lv.Views); err != nil {
			log.WithError(err).Error("Failed to scan liked video row")
			return nil, err
		}
		videos = append(videos, &lv)
	}
	return videos, rows.Err()
}

// CountLikesOnOwnedVideos counts like edges whose target is a video owned by
// ownerID. Ownership is resolved transitively through the videos table
// (like -> video -> owner).
func (r *EdgeRepository) CountLikesOnOwnedVideos(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	query := `
		SELECT count(*)
		FROM edges e
		JOIN videos v ON v.id = e.target_id
		WHERE e.kind = $1 AND v.owner_id = $2`
	err := r.DB.QueryRowContext(ctx, query, model.KindVideoLike, ownerID).Scan(&count)
	if err != nil {
		logger.Log.WithError(err).WithField("owner_id", ownerID).Error("Failed to execute owned video likes query")
		return 0, err
	}
	return count, nil
}

// DeleteByTarget removes every edge of the given kind pointing at a target.
// The ledger enforces no foreign-key cascade; the component deleting the
// target entity calls this inside its own transaction.
func (r *EdgeRepository) DeleteByTarget(ctx context.Context, tx *sql.Tx, targetID uuid.UUID, kind model.EdgeKind) error {
	log := logger.Log.WithFields(logrus.Fields{
		"target_id": targetID,
		"kind":      kind,
	})
	log.Info("Executing query to delete edges by target")

	_, err := tx.ExecContext(ctx, `DELETE FROM edges WHERE target_id = $1 AND kind = $2`, targetID, kind)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete edges by target query")
		return err
	}
	return nil
}
