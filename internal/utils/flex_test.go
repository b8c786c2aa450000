package util_test

import (
	"encoding/json"
	"testing"

	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

func TestFlexInt(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		esperado int
	}{
		{"Number", `42`, 42},
		{"QuotedNumber", `"42"`, 42},
		{"Null", `null`, 0},
		{"EmptyString", `""`, 0},
		{"Garbage", `"abc"`, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var v util.FlexInt
			if err := json.Unmarshal([]byte(c.input), &v); err != nil {
				t.Fatalf("Unmarshal falhou para %s: %v", c.input, err)
			}
			if int(v) != c.esperado {
				t.Errorf("Valor incorreto para %s. Esperado: %d, Recebido: %d", c.input, c.esperado, int(v))
			}
		})
	}
}

func TestFlexFloat(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		esperado float64
	}{
		{"Number", `12.5`, 12.5},
		{"QuotedNumber", `"12.5"`, 12.5},
		{"Integer", `7`, 7},
		{"Null", `null`, 0},
		{"Garbage", `"x"`, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var v util.FlexFloat
			if err := json.Unmarshal([]byte(c.input), &v); err != nil {
				t.Fatalf("Unmarshal falhou para %s: %v", c.input, err)
			}
			if float64(v) != c.esperado {
				t.Errorf("Valor incorreto para %s. Esperado: %v, Recebido: %v", c.input, c.esperado, float64(v))
			}
		})
	}
}

func TestFlexBool(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		esperado bool
	}{
		{"True", `true`, true},
		{"False", `false`, false},
		{"QuotedTrue", `"true"`, true},
		{"QuotedFalse", `"false"`, false},
		{"Null", `null`, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var v util.FlexBool
			if err := json.Unmarshal([]byte(c.input), &v); err != nil {
				t.Fatalf("Unmarshal falhou para %s: %v", c.input, err)
			}
			if bool(v) != c.esperado {
				t.Errorf("Valor incorreto para %s. Esperado: %v, Recebido: %v", c.input, c.esperado, bool(v))
			}
		})
	}
}

func TestDTOWithFlexFields(t *testing.T) {
	var dto struct {
		Numero util.FlexInt   `json:"numero"`
		Valor  util.FlexFloat `json:"valor"`
		Feito  util.FlexBool  `json:"feito"`
	}

	body := `{"numero": "3", "valor": 150, "feito": "true"}`
	if err := json.Unmarshal([]byte(body), &dto); err != nil {
		t.Fatalf("Unmarshal falhou: %v", err)
	}

	if int(dto.Numero) != 3 {
		t.Errorf("Numero incorreto. Esperado: 3, Recebido: %d", int(dto.Numero))
	}
	if float64(dto.Valor) != 150 {
		t.Errorf("Valor incorreto. Esperado: 150, Recebido: %v", float64(dto.Valor))
	}
	if !bool(dto.Feito) {
		t.Error("Feito deveria ser true")
	}
}
