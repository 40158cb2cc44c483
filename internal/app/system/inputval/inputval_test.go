package inputval

import "testing"

type profileInput struct {
	DisplayName string   `json:"displayName" validate:"required,max=10" label:"Display name"`
	City        string   `json:"city,omitempty" validate:"max=5" label:"City"`
	Status      string   `json:"status" validate:"omitempty,oneof=active disabled"`
	Website     string   `json:"website" validate:"omitempty,http_url" label:"Website"`
	Tags        []string `json:"tags" validate:"max=2" label:"Tags"`
}

func TestValidate_OK(t *testing.T) {
	res := Validate(profileInput{DisplayName: "Ali", Status: "active", Website: "https://ali.pk"})
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
	if res.First() != "" {
		t.Errorf("First() = %q, want empty", res.First())
	}
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		field string
		msg   string
	}{
		{"required", profileInput{}, "displayName", "Display name is required"},
		{"max", profileInput{DisplayName: "abcdefghijkl"}, "displayName", "Display name must be at most 10 characters"},
		{"max no label uses go name", profileInput{DisplayName: "a", Status: "gone"}, "status", "Status must be one of: active, disabled"},
		{"url", &profileInput{DisplayName: "a", Website: "not a url"}, "website", "Website must be a valid URL"},
		{"slice max", profileInput{DisplayName: "a", Tags: []string{"1", "2", "3"}}, "tags", "Tags can have at most 2 items"},
		{"json name option stripped", profileInput{DisplayName: "a", City: "Islamabad"}, "city", "City must be at most 5 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.in)
			if !res.HasErrors() {
				t.Fatal("expected errors")
			}
			got := res.Errors[0]
			if got.Field != tt.field || got.Message != tt.msg {
				t.Errorf("got %+v, want {%s %s}", got, tt.field, tt.msg)
			}
			if res.First() != tt.msg {
				t.Errorf("First() = %q", res.First())
			}
		})
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	if res := Validate(42); !res.HasErrors() {
		t.Error("expected an error for a non-struct value")
	}
}
