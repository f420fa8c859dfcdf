package templateapi

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/spf13/cast"
)

// NormalizeTemplate maps a raw template object onto the canonical model. Each
// field is looked up under its snake_case name first, then its camelCase name.
func NormalizeTemplate(obj map[string]any) model.Template {
	return model.Template{
		ID:            int64Field(obj, 0, "id"),
		TemplateID:    stringField(obj, "template_id", "templateId"),
		RelTemplateID: stringField(obj, "rel_template_id", "relTemplateId"),
		Name:          stringField(obj, "name"),
		SignName:      stringField(obj, "sign_name", "signName"),
		SourceID:      stringField(obj, "source_id", "sourceId"),
		Channel:       model.Channel(positiveField(obj, int(model.ChannelEmail), "channel")),
		Subject:       stringField(obj, "subject"),
		Content:       stringField(obj, "content"),
		Status:        model.TemplateStatus(positiveField(obj, int(model.TemplateStatusPending), "status")),
		Creator:       stringField(obj, "creator", "created_by", "createdBy"),
		CreateTime:    stringField(obj, "create_time", "createTime"),
		ModifyTime:    stringField(obj, "modify_time", "modifyTime"),
	}
}

func NormalizeRecord(obj map[string]any) model.MessageRecord {
	retries := intField(obj, 0, "retry_count", "retryCount")
	if retries < 0 {
		retries = 0
	}

	return model.MessageRecord{
		ID:           int64Field(obj, 0, "id"),
		MsgID:        stringField(obj, "msg_id", "msgId"),
		SourceID:     stringField(obj, "source_id", "sourceId"),
		TemplateID:   stringField(obj, "template_id", "templateId"),
		Channel:      model.Channel(positiveField(obj, int(model.ChannelEmail), "channel")),
		To:           stringField(obj, "to"),
		Subject:      stringField(obj, "subject"),
		TemplateData: dataField(obj, "template_data", "templateData"),
		Status:       model.RecordStatus(positiveField(obj, int(model.RecordStatusPending), "status")),
		RetryCount:   retries,
		CreateTime:   stringField(obj, "create_time", "createTime"),
		ModifyTime:   stringField(obj, "modify_time", "modifyTime"),
	}
}

func lookup(obj map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := obj[key]; ok && value != nil {
			return value, true
		}
	}

	return nil, false
}

func stringField(obj map[string]any, keys ...string) string {
	value, ok := lookup(obj, keys...)
	if !ok {
		return ""
	}

	return toString(value)
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case map[string]any, []any:
		return ""
	default:
		return cast.ToString(v)
	}
}

// dataField keeps opaque substitution data as text; structured values are
// re-serialized instead of dropped.
func dataField(obj map[string]any, keys ...string) string {
	value, ok := lookup(obj, keys...)
	if !ok {
		return ""
	}

	switch value.(type) {
	case map[string]any, []any:
		encoded, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(encoded)
	default:
		return toString(value)
	}
}

func toNumber(value any) (float64, bool) {
	var text string
	switch v := value.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = strings.TrimSpace(v)
	case bool, map[string]any, []any:
		return 0, false
	default:
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		return n, finite(n)
	}

	if text == "" {
		return 0, false
	}

	n, err := cast.ToFloat64E(text)
	if err != nil {
		return 0, false
	}

	return n, finite(n)
}

func finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

func intField(obj map[string]any, fallback int, keys ...string) int {
	value, ok := lookup(obj, keys...)
	if !ok {
		return fallback
	}

	n, ok := toNumber(value)
	if !ok || n > math.MaxInt32 || n < math.MinInt32 {
		return fallback
	}

	return int(math.Trunc(n))
}

// positiveField is used for enumerations, where zero and negatives are malformed.
func positiveField(obj map[string]any, fallback int, keys ...string) int {
	n := intField(obj, fallback, keys...)
	if n <= 0 {
		return fallback
	}

	return n
}

func int64Field(obj map[string]any, fallback int64, keys ...string) int64 {
	value, ok := lookup(obj, keys...)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
	}

	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	n, ok := toNumber(value)
	if !ok || n >= math.MaxInt64 || n < math.MinInt64 {
		return fallback
	}

	return int64(math.Trunc(n))
}
