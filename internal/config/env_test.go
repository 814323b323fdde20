package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("ASTEROIDS_TEST_STR", "hello")

	if got := GetEnv("ASTEROIDS_TEST_STR", "fallback"); got != "hello" {
		t.Errorf("GetEnv() = %q, expected %q", got, "hello")
	}
	if got := GetEnv("ASTEROIDS_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected %q", got, "fallback")
	}
}

func TestGetEnvNumbers(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		intWant int
		i64Want int64
		fltWant float64
	}{
		{name: "unset", set: false, intWant: 7, i64Want: 7, fltWant: 7},
		{name: "valid_int", value: "42", set: true, intWant: 42, i64Want: 42, fltWant: 42},
		{name: "valid_float", value: "2.5", set: true, intWant: 7, i64Want: 7, fltWant: 2.5},
		{name: "negative", value: "-3", set: true, intWant: -3, i64Want: -3, fltWant: -3},
		{name: "garbage", value: "abc", set: true, intWant: 7, i64Want: 7, fltWant: 7},
		{name: "nan", value: "NaN", set: true, intWant: 7, i64Want: 7, fltWant: 7},
		{name: "inf", value: "Inf", set: true, intWant: 7, i64Want: 7, fltWant: 7},
		{name: "negative_inf", value: "-Inf", set: true, intWant: 7, i64Want: 7, fltWant: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const key = "ASTEROIDS_TEST_NUM"
			if tt.set {
				t.Setenv(key, tt.value)
			}
			if got := GetEnvInt(key, 7); got != tt.intWant {
				t.Errorf("GetEnvInt() = %d, expected %d", got, tt.intWant)
			}
			if got := GetEnvInt64(key, 7); got != tt.i64Want {
				t.Errorf("GetEnvInt64() = %d, expected %d", got, tt.i64Want)
			}
			if got := GetEnvFloat(key, 7); got != tt.fltWant {
				t.Errorf("GetEnvFloat() = %v, expected %v", got, tt.fltWant)
			}
		})
	}
}
