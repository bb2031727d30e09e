// Package catalog reads the routing catalog owned by the management
// surface: message types, groups with their routing rules, and group
// membership. The router never writes to these tables.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mzhdanov/alert-router/internal/model"
)

var ErrMessageTypeNotFound = errors.New("message type not found")

type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetMessageTypeByCode retrieves an active message type by its code.
// Inactive types are treated the same as unknown ones.
func (r *Repository) GetMessageTypeByCode(ctx context.Context, code string) (model.MessageType, error) {
	query := `
		SELECT id, code, name, priority, color, is_active
		FROM message_types
		WHERE code = $1 AND is_active = TRUE;
    `

	var mt model.MessageType
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&mt.ID, &mt.Code, &mt.Name, &mt.Priority, &mt.Color, &mt.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MessageType{}, ErrMessageTypeNotFound
		}

		return model.MessageType{}, fmt.Errorf("failed to get message type: %w", err)
	}

	return mt, nil
}

// GetGroupsByTypeID retrieves all active groups associated with a message
// type, with their members preloaded.
func (r *Repository) GetGroupsByTypeID(ctx context.Context, typeID uuid.UUID) ([]model.Group, error) {
	query := `
		SELECT g.id, g.code, g.name, g.is_active,
		       COALESCE(g.host_filter, ''), COALESCE(g.service_filter, ''),
		       g.receive_start, g.receive_end,
		       COALESCE(g.mute_start, ''), COALESCE(g.mute_end, ''),
		       g.allow_duplicates, g.duplicate_window_minutes
		FROM groups g
		JOIN group_message_types gmt ON gmt.group_id = g.id
		WHERE gmt.message_type_id = $1 AND g.is_active = TRUE;
    `

	rows, err := r.db.QueryContext(ctx, query, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups for message type: %w", err)
	}
	defer rows.Close()

	var groups []model.Group
	var ids []uuid.UUID

	for rows.Next() {
		var g model.Group
		if err := rows.Scan(
			&g.ID, &g.Code, &g.Name, &g.IsActive,
			&g.HostFilter, &g.ServiceFilter,
			&g.ReceiveStart, &g.ReceiveEnd,
			&g.MuteStart, &g.MuteEnd,
			&g.AllowDuplicates, &g.DuplicateWindowMinutes,
		); err != nil {
			return nil, err
		}

		groups = append(groups, g)
		ids = append(ids, g.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(groups) == 0 {
		return nil, nil
	}

	members, err := r.getMembers(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range groups {
		groups[i].Members = members[groups[i].ID]
	}

	return groups, nil
}

// getMembers loads membership for a set of groups in one query.
func (r *Repository) getMembers(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID][]model.Recipient, error) {
	query := `
		SELECT gm.group_id, u.id, u.display_name,
		       COALESCE(u.line_user_id, ''), COALESCE(u.line_access_token, ''), u.is_active
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = ANY($1);
    `

	ids := make([]string, 0, len(groupIDs))
	for _, id := range groupIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	members := make(map[uuid.UUID][]model.Recipient)

	for rows.Next() {
		var groupID uuid.UUID
		var rec model.Recipient

		if err := rows.Scan(
			&groupID, &rec.ID, &rec.DisplayName,
			&rec.LineUserID, &rec.LineAccessToken, &rec.IsActive,
		); err != nil {
			return nil, err
		}

		members[groupID] = append(members[groupID], rec)
	}

	return members, rows.Err()
}
