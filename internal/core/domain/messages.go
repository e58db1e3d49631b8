// internal/core/domain/messages.go
package domain

// MessageKey identifies a caller-facing status message. The core returns
// keys and substitution parameters; rendering them into a language is the
// presentation layer's job.
type MessageKey string

const (
	MsgProductAdded      MessageKey = "product_added"
	MsgProductRemoved    MessageKey = "product_removed"
	MsgSoldProduct       MessageKey = "sold_product"
	MsgNotEnoughQuantity MessageKey = "not_enough_quantity"
	MsgProductNotFound   MessageKey = "product_not_found"
	MsgProductUpdated    MessageKey = "product_updated"
)

// Status is the outcome of a caller-facing operation: a message key plus the
// parameters to substitute into the rendered text.
type Status struct {
	Key    MessageKey
	Params map[string]string
}

// NewStatus builds a status without parameters.
func NewStatus(key MessageKey) Status {
	return Status{Key: key}
}

// With returns a copy of the status with one parameter added.
func (s Status) With(name, value string) Status {
	params := make(map[string]string, len(s.Params)+1)
	for k, v := range s.Params {
		params[k] = v
	}
	params[name] = value
	return Status{Key: s.Key, Params: params}
}
