package validation_test

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formwizard/pkg/definition"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

const (
	msgFirstName     = "First Name is required and should contain only alphabets"
	msgLastName      = "Last Name is required and should contain only alphabets"
	msgEmailRequired = "Email is required"
	msgEmailInvalid  = "Email address is invalid"
	msgPassRequired  = "Password is required"
	msgPassInvalid   = "Password must be at least 8 characters long and include a letter, a number, and a special character"
)

func registration(t *testing.T) *validation.RuleSet {
	t.Helper()
	rs, err := validation.Compile(definition.Default())
	if err != nil {
		t.Fatalf("compile default definition: %v", err)
	}
	return rs
}

func values(kv ...string) model.FieldValues {
	out := model.FieldValues{"firstName": "", "lastName": "", "email": "", "password": ""}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

func TestValidate_StepOneNames(t *testing.T) {
	rs := registration(t)

	cases := []struct {
		name  string
		first string
		last  string
		want  model.ErrorMap
	}{
		{name: "alphabetic", first: "Jane", last: "Doe", want: model.ErrorMap{}},
		{name: "single letters", first: "J", last: "D", want: model.ErrorMap{}},
		{name: "both empty", want: model.ErrorMap{"firstName": msgFirstName, "lastName": msgLastName}},
		{name: "digit", first: "Jane2", last: "Doe", want: model.ErrorMap{"firstName": msgFirstName}},
		{name: "space", first: "Jane", last: "Van Doe", want: model.ErrorMap{"lastName": msgLastName}},
		{name: "symbol", first: "Jane-", last: "O'Doe", want: model.ErrorMap{"firstName": msgFirstName, "lastName": msgLastName}},
		{name: "non ascii letter", first: "Zoë", last: "Doe", want: model.ErrorMap{"firstName": msgFirstName}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rs.Validate(1, values("firstName", tc.first, "lastName", tc.last))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_StepTwoEmail(t *testing.T) {
	rs := registration(t)

	cases := []struct {
		email string
		want  string
	}{
		{email: "a@b.co"},
		{email: "jane@doe.com"},
		{email: "", want: msgEmailRequired},
		{email: "abc", want: msgEmailInvalid},
		{email: "a@b", want: msgEmailInvalid},
		{email: "@b.co", want: msgEmailInvalid},
		{email: "a@.co", want: msgEmailInvalid},
		{email: "a@b.", want: msgEmailInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			got := rs.Validate(2, values("email", tc.email))
			want := model.ErrorMap{}
			if tc.want != "" {
				want["email"] = tc.want
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_StepThreePassword(t *testing.T) {
	rs := registration(t)

	cases := []struct {
		password string
		want     string
	}{
		{password: "Abcd123!"},
		{password: "Strong1!"},
		{password: "a1@aaaaaaaaaaaa"},
		{password: "", want: msgPassRequired},
		{password: "weak", want: msgPassInvalid},
		{password: "Ab1!", want: msgPassInvalid},
		{password: "Abc123!", want: msgPassInvalid},
		{password: "abcdefgh", want: msgPassInvalid},
		{password: "12345678!", want: msgPassInvalid},
		{password: "Abcdefg!", want: msgPassInvalid},
		{password: "Abcd1234", want: msgPassInvalid},
		{password: "Abcd123#", want: msgPassInvalid},
		{password: "Abcd 123!", want: msgPassInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.password, func(t *testing.T) {
			got := rs.Validate(3, values("password", tc.password))
			want := model.ErrorMap{}
			if tc.want != "" {
				want["password"] = tc.want
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_ShortPasswordsAlwaysFlagged(t *testing.T) {
	rs := registration(t)
	base := "Ab1!Ab1!"
	for n := 0; n < len(base); n++ {
		errs := rs.Validate(3, values("password", base[:n]))
		if _, ok := errs["password"]; !ok {
			t.Fatalf("expected password of length %d to be flagged", n)
		}
	}
}

func TestValidate_StepScoped(t *testing.T) {
	rs := registration(t)
	// later steps are invalid but must not be reported on step 1
	got := rs.Validate(1, values("firstName", "Jane", "lastName", "Doe", "email", "bad", "password", "x"))
	if len(got) != 0 {
		t.Fatalf("expected no errors for step 1, got %v", got)
	}

	got = rs.Validate(2, values("email", "jane@doe.com"))
	if len(got) != 0 {
		t.Fatalf("expected step 2 to ignore empty names, got %v", got)
	}
}

func TestValidate_UnknownStepIsEmpty(t *testing.T) {
	rs := registration(t)
	for _, step := range []model.StepIndex{0, 4, -1} {
		if got := rs.Validate(step, values()); len(got) != 0 {
			t.Fatalf("step %d: expected empty map, got %v", step, got)
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	rs := registration(t)
	in := values("email", "abc")
	before := in.Clone()

	first := rs.Validate(2, in)
	second := rs.Validate(2, in)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated validation differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, in); diff != "" {
		t.Fatalf("validate mutated its input (-before +after):\n%s", diff)
	}
}

func TestRuleSet_FirstFailureWins(t *testing.T) {
	rs := validation.NewRuleSet(map[model.StepIndex][]validation.Check{
		1: {
			{Field: "code", Test: validation.Required(), Message: "missing"},
			{Field: "code", Test: validation.MinLength(3), Message: "short"},
			{Field: "code", Test: validation.Matches(regexp.MustCompile(`^[0-9]+$`)), Message: "digits"},
		},
	})

	cases := map[string]string{
		"":    "missing",
		"a":   "short",
		"abc": "digits",
		"123": "",
	}
	for input, want := range cases {
		got := rs.Validate(1, model.FieldValues{"code": input})
		if got["code"] != want {
			t.Fatalf("input %q: want %q, got %q", input, want, got["code"])
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	cases := map[string]model.Rule{
		"unknown kind":      {Kind: "email"},
		"missing pattern":   {Kind: model.RulePattern},
		"bad pattern":       {Kind: model.RulePattern, Params: map[string]string{"pattern": "(?=x)"}},
		"missing length":    {Kind: model.RuleMinLength},
		"negative length":   {Kind: model.RuleMaxLength, Params: map[string]string{"value": "-1"}},
		"non numeric value": {Kind: model.RuleMinLength, Params: map[string]string{"value": "eight"}},
	}

	for name, rule := range cases {
		t.Run(name, func(t *testing.T) {
			def := model.Definition{Steps: []model.Step{{Fields: []model.Field{{Name: "x", Rules: []model.Rule{rule}}}}}}
			if _, err := validation.Compile(def); err == nil {
				t.Fatalf("expected compile error")
			}
		})
	}
}

func TestCompile_MessageFallbacks(t *testing.T) {
	def := model.Definition{Steps: []model.Step{{Fields: []model.Field{
		{Name: "a", Label: "Alpha", Rules: []model.Rule{{Kind: model.RuleRequired}}},
		{Name: "b", Message: "field message", Rules: []model.Rule{{Kind: model.RuleRequired}}},
		{Name: "c", Message: "field message", Rules: []model.Rule{{Kind: model.RuleRequired, Message: "rule message"}}},
	}}}}

	rs := validation.MustCompile(def)
	got := rs.Validate(1, model.FieldValues{})
	want := model.ErrorMap{"a": "Alpha is invalid", "b": "field message", "c": "rule message"}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}
