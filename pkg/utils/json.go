package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJson devolve o valor como JSON indentado. Aceita tanto uma estrutura
// quanto um []byte já serializado.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "\t"); err != nil {
			fmt.Println(err)
		}
		return out.String()
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		fmt.Println(err)
	}

	return string(buffer)
}
