package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica se o erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation verifica se o erro é violação de chave estrangeira (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// likeTerm prepara o termo de busca para ILIKE (%termo%).
func likeTerm(q string) string {
	return "%" + strings.TrimSpace(q) + "%"
}

// nullIfEmpty devolve nil para strings vazias (colunas TEXT NULL).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
