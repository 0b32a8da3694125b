package flagx

import (
	"reflect"
	"testing"
)

func TestFilterArgs_SeparateValues(t *testing.T) {
	args := []string{"-a", ":50051", "-x", "ignored", "-d", "dsn"}
	got := FilterArgs(args, []string{"-a", "-d"})
	want := []string{"-a", ":50051", "-d", "dsn"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterArgs = %v, want %v", got, want)
	}
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "--other=zzz", "-a=:9000"}
	got := FilterArgs(args, []string{"--config", "-a"})
	want := []string{"--config=conf.json", "-a=:9000"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterArgs = %v, want %v", got, want)
	}
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-a", "-d", "dsn"}
	got := FilterArgs(args, []string{"-a", "-d"})
	want := []string{"-a", "-d", "dsn"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterArgs = %v, want %v", got, want)
	}
}

func TestFilterArgs_EmptyInput(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
