package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/blogful/internal/errs"
)

// ErrCode reports the Code of an already classified error, Other otherwise.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Classify returns the *Error inside err, converting a raw pgconn error on
// the way. It returns nil for errors that did not come from the server.
func Classify(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}
	return nil
}

// domainName turns "blogful_comments" into "COMMENT".
func domainName(tableName string) string {
	if tableName == "" {
		return "RECORD"
	}

	domain := strings.ToUpper(tableName)
	domain = strings.TrimPrefix(domain, "BLOGFUL_")
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}
	return domain
}

// Describe renders a classified error as a short sentence for logs, for
// example "Comment violates foreign key violation (blogful_comments_user_id_fkey)".
// It returns "" for errors that did not come from the server.
func Describe(err error) string {
	sqlErr := Classify(err)
	if sqlErr == nil {
		return ""
	}

	caser := cases.Title(language.English)
	subject := caser.String(strings.ToLower(domainName(sqlErr.TableName)))
	what := strings.ReplaceAll(string(sqlErr.Code), "_", " ")
	if sqlErr.Code == Other {
		what = "failed with " + sqlErr.DatabaseCode
	} else {
		what = "violates " + what
	}

	if sqlErr.ConstraintName != "" {
		return fmt.Sprintf("%s %s (%s)", subject, what, sqlErr.ConstraintName)
	}
	if sqlErr.ColumnName != "" {
		return fmt.Sprintf("%s %s (column %s)", subject, what, sqlErr.ColumnName)
	}
	return fmt.Sprintf("%s %s", subject, what)
}

// generateErrorCode builds a machine code like COMMENT_NOT_FOUND from the
// table name and error category. Table prefixes ("blogful_") are dropped.
func generateErrorCode(tableName string, errType Code) string {
	domain := domainName(tableName)

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "REFERENCE_NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextValue:
		action = "INVALID"
	case ConnectionFailure:
		action = "UNAVAILABLE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// HandleError converts a store error into the HTTP error sent to clients.
//
//   - *errs.HTTPError: returned unchanged
//   - anything else, including constraint violations and a leaked
//     ErrNoRows: a generic 500 whose Code records the classification for
//     logs
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	internal := errs.NewInternalServerError()
	if sqlErr := Classify(err); sqlErr != nil {
		internal.Code = generateErrorCode(sqlErr.TableName, sqlErr.Code)
	}
	return internal
}
