package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/johannesjahn/bun-chat/internal/pkg/chat/application/domain"
	repository "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/port"
)

// SQLSTATE codes the adapter translates into domain errors.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
)

// PgChatRepository implements the chat repository port on Postgres via pgx.
type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

var _ repository.ChatRepository = (*PgChatRepository)(nil)

// CreateChatWithMembers inserts the chat row and all membership rows in one
// transaction. The unique index on chats.direct_key makes the losing side of
// a same-pair race fail with a unique violation, which is surfaced as
// chat.ErrDirectChatExists. A serialization failure is retried once; the
// whole transaction re-runs, so no partial state can leak.
func (r *PgChatRepository) CreateChatWithMembers(ctx context.Context, c chat.Chat, memberIDs []int64) (chat.Chat, error) {
	created, err := r.createChatTx(ctx, c, memberIDs)
	if isSerializationFailure(err) {
		created, err = r.createChatTx(ctx, c, memberIDs)
	}
	return created, err
}

func (r *PgChatRepository) createChatTx(ctx context.Context, c chat.Chat, memberIDs []int64) (chat.Chat, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return chat.Chat{}, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO chats (title, direct_key, created_at) VALUES ($1, $2, $3) RETURNING id`,
		c.Title, c.DirectKey, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return chat.Chat{}, translateUnique(err)
	}

	for _, uid := range memberIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO memberships (user_id, chat_id) VALUES ($1, $2)`,
			uid, c.ID,
		); err != nil {
			return chat.Chat{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return chat.Chat{}, translateUnique(err)
	}
	return c, nil
}

func (r *PgChatRepository) FindDirectChatByKey(ctx context.Context, key string) (*chat.Chat, error) {
	var c chat.Chat
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, direct_key, created_at FROM chats WHERE direct_key = $1`,
		key,
	).Scan(&c.ID, &c.Title, &c.DirectKey, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgChatRepository) GetChat(ctx context.Context, chatID int64) (*chat.Chat, error) {
	var c chat.Chat
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, direct_key, created_at FROM chats WHERE id = $1`,
		chatID,
	).Scan(&c.ID, &c.Title, &c.DirectKey, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, chat.ErrChatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgChatRepository) ListChatsByUser(ctx context.Context, userID int64) ([]chat.Chat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.title, c.direct_key, c.created_at
		FROM chats c
		JOIN memberships m ON m.chat_id = c.id
		WHERE m.user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := make([]chat.Chat, 0)
	for rows.Next() {
		var c chat.Chat
		if err := rows.Scan(&c.ID, &c.Title, &c.DirectKey, &c.CreatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

func (r *PgChatRepository) ListMemberIDs(ctx context.Context, chatID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id FROM memberships WHERE chat_id = $1 ORDER BY user_id`,
		chatID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgChatRepository) IsMember(ctx context.Context, chatID, userID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM memberships WHERE chat_id = $1 AND user_id = $2)`,
		chatID, userID,
	).Scan(&exists)
	return exists, err
}

func (r *PgChatRepository) SaveMessage(ctx context.Context, m chat.Message) (chat.Message, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO messages (chat_id, user_id, content, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		m.ChatID, m.UserID, m.Content, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return chat.Message{}, err
	}
	return m, nil
}

func (r *PgChatRepository) ListMessages(ctx context.Context, chatID int64) ([]chat.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, chat_id, user_id, content, created_at
		FROM messages
		WHERE chat_id = $1
		ORDER BY created_at ASC, id ASC
	`, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.UserID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return chat.ErrDirectChatExists
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeSerializationFailure
}
