package dbhelper

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
)

// buildUpdate assembles a partial UPDATE for the given column/value pairs.
// Columns are emitted in sorted order so the generated SQL is deterministic.
func buildUpdate(table string, id uuid.UUID, fields map[string]interface{}) (string, []interface{}) {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	setParts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns)+1)
	for i, column := range columns {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, fields[column])
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`, table, strings.Join(setParts, ", "), len(args))
	return query, args
}

func updateFields(table string, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	query, args := buildUpdate(table, id, fields)
	result, err := database.Bento.Exec(query, args...)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func updateFieldsTx(tx *sql.Tx, table string, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	query, args := buildUpdate(table, id, fields)
	result, err := tx.Exec(query, args...)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func deleteByID(table string, id uuid.UUID) error {
	result, err := database.Bento.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func requireRowsAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
