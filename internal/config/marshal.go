package config

import (
	"fmt"
	"reflect"
	"strings"
)

// MarshalEnv renders c as .env content, one KEY=value line per tagged field
// in declaration order. Zero values are included so the output lists every
// setting.
func (c AppConfig) MarshalEnv() string {
	var sb strings.Builder

	v := reflect.ValueOf(c)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> "KEY"
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		fmt.Fprintf(&sb, "%s=%v\n", key, v.Field(i).Interface())
	}
	return sb.String()
}
