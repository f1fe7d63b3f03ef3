package history

import (
	"encoding/json"
	"fmt"
)

// Session is the subset of a per-client session store the log needs.
// *session.Session from fiber satisfies it.
type Session interface {
	Get(key string) interface{}
	Set(key string, val interface{})
	Delete(key string)
}

// Load reads the log stored in sess. A missing value yields an empty log.
func Load(sess Session) (*Log, error) {
	raw := sess.Get(SessionKey)
	if raw == nil {
		return New(), nil
	}

	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return New(), fmt.Errorf("unexpected history value of type %T", raw)
	}

	l := New()
	if err := json.Unmarshal(data, l); err != nil {
		return New(), err
	}
	return l, nil
}

// Store writes l into sess. Values are kept as JSON strings so any session
// storage backend can hold them without type registration.
func Store(sess Session, l *Log) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	sess.Set(SessionKey, string(data))
	return nil
}

// Clear removes the log from sess.
func Clear(sess Session) {
	sess.Delete(SessionKey)
}
