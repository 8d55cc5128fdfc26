package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-api-tests/models"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	userColumns = []string{"id", "name", "email", "phone", "company", "password_hash", "created_at"}
	noteColumns = []string{"id", "user_id", "title", "description", "category", "completed", "created_at", "updated_at"}
)

func insertUserQuery(u models.User) (string, []any, error) {
	return builder.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Name, u.Email, u.Phone, u.Company, u.PasswordHash, u.CreatedAt).
		ToSql()
}

func selectUserQuery(where sq.Sqlizer) (string, []any, error) {
	return builder.Select(userColumns...).From("users").Where(where).ToSql()
}

func updateProfileQuery(id string, update models.ProfileUpdate) (string, []any, error) {
	return builder.Update("users").
		Set("name", update.Name).
		Set("phone", update.Phone).
		Set("company", update.Company).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func updatePasswordQuery(id, passwordHash string) (string, []any, error) {
	return builder.Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func deleteByUserQuery(table, column, userID string) (string, []any, error) {
	return builder.Delete(table).Where(sq.Eq{column: userID}).ToSql()
}

func insertSessionQuery(token, userID string, at time.Time) (string, []any, error) {
	return builder.Insert("sessions").
		Columns("token", "user_id", "created_at").
		Values(token, userID, at).
		ToSql()
}

func insertResetTokenQuery(token, userID string, expiresAt time.Time) (string, []any, error) {
	return builder.Insert("reset_tokens").
		Columns("token", "user_id", "expires_at").
		Values(token, userID, expiresAt).
		ToSql()
}

func selectResetTokenQuery(token string) (string, []any, error) {
	return builder.Select("user_id", "expires_at").
		From("reset_tokens").
		Where(sq.Eq{"token": token}).
		ToSql()
}

func insertNoteQuery(n models.Note) (string, []any, error) {
	return builder.Insert("notes").
		Columns(noteColumns...).
		Values(n.ID, n.UserID, n.Title, n.Description, string(n.Category), n.Completed, n.CreatedAt, n.UpdatedAt).
		ToSql()
}

func selectNotesQuery(userID string) (string, []any, error) {
	return builder.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func selectNoteQuery(userID, id string) (string, []any, error) {
	return builder.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func updateNoteQuery(n models.Note) (string, []any, error) {
	return builder.Update("notes").
		Set("title", n.Title).
		Set("description", n.Description).
		Set("category", string(n.Category)).
		Set("completed", n.Completed).
		Set("updated_at", n.UpdatedAt).
		Where(sq.Eq{"user_id": n.UserID, "id": n.ID}).
		ToSql()
}

func setCompletedQuery(userID, id string, completed bool, at time.Time) (string, []any, error) {
	return builder.Update("notes").
		Set("completed", completed).
		Set("updated_at", at).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func deleteQuery(table string, where sq.Eq) (string, []any, error) {
	return builder.Delete(table).Where(where).ToSql()
}
