package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// unknownMembers возвращает члены JSON-объекта, не входящие в known
// Значения приводятся к компактной записи, чтобы повторная загрузка давала те же байты
func unknownMembers(data []byte, known ...string) (domain.Extra, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}

	out := make(domain.Extra, len(all))
	for k, v := range all {
		compacted, err := compact(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = compacted
	}
	return out, nil
}

// withMembers сериализует v (объект) и дописывает в конец extra в порядке ключей
// Ключи, которые уже есть в объекте, не дублируются
func withMembers(v interface{}, extra domain.Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if _, ok := present[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for i, k := range keys {
		if len(present) > 0 || i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		if len(extra[k]) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(extra[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func compact(raw json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
