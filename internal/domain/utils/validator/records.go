package validator

import (
	"fmt"

	pv "github.com/go-playground/validator/v10"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/common/errorz"
)

var records = pv.New(pv.WithRequiredStructEnabled())

// Record validates a structured payload record (contact, network credential,
// calendar event, template) against its struct tags.
func Record(v any) error {
	if err := records.Struct(v); err != nil {
		var fields []string
		if verrs, ok := err.(pv.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
			}
		}
		return errorz.Validation("invalid record", err, map[string]any{"fields": fields})
	}
	return nil
}
