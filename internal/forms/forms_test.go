package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostForm(t *testing.T) {
	groupID := uint(3)

	tests := []struct {
		name    string
		form    PostForm
		invalid []string
	}{
		{name: "Valid post", form: PostForm{Text: "hello"}},
		{name: "Valid post with group", form: PostForm{Text: "hello", GroupID: &groupID}},
		{name: "Empty text rejected", form: PostForm{Text: ""}, invalid: []string{"Text"}},
		{name: "Text too long rejected", form: PostForm{Text: strings.Repeat("a", 10001)}, invalid: []string{"Text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := Validate(tt.form)
			if len(tt.invalid) == 0 {
				assert.Nil(t, fieldErrors)
				return
			}
			for _, field := range tt.invalid {
				assert.Contains(t, fieldErrors, field)
			}
		})
	}
}

func TestValidateCommentForm(t *testing.T) {
	assert.Nil(t, Validate(CommentForm{Text: "bien dit"}))

	fieldErrors := Validate(CommentForm{Text: ""})
	assert.Contains(t, fieldErrors, "Text")
	assert.Equal(t, "champ obligatoire", fieldErrors["Text"])
}

func TestValidateGroupForm(t *testing.T) {
	valid := GroupForm{Title: "Groupe de test", Slug: "test-slug", Description: "desc"}
	assert.Nil(t, Validate(valid))

	tests := []struct {
		name  string
		form  GroupForm
		field string
	}{
		{name: "Missing title", form: GroupForm{Slug: "s", Description: "d"}, field: "Title"},
		{name: "Slug with spaces", form: GroupForm{Title: "t", Slug: "bad slug", Description: "d"}, field: "Slug"},
		{name: "Slug too long", form: GroupForm{Title: "t", Slug: strings.Repeat("a", 41), Description: "d"}, field: "Slug"},
		{name: "Missing description", form: GroupForm{Title: "t", Slug: "ok"}, field: "Description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := Validate(tt.form)
			assert.Contains(t, fieldErrors, tt.field)
		})
	}
}

func TestValidateSignupForm(t *testing.T) {
	valid := SignupForm{Email: "leo@example.com", Password: "motdepasse", Username: "leo"}
	assert.Nil(t, Validate(valid))

	tests := []struct {
		name  string
		form  SignupForm
		field string
	}{
		{name: "Bad email", form: SignupForm{Email: "nope", Password: "motdepasse", Username: "leo"}, field: "Email"},
		{name: "Short password", form: SignupForm{Email: "leo@example.com", Password: "abc", Username: "leo"}, field: "Password"},
		{name: "Username with spaces", form: SignupForm{Email: "leo@example.com", Password: "motdepasse", Username: "l e o"}, field: "Username"},
		{name: "Bad avatar URL", form: SignupForm{Email: "leo@example.com", Password: "motdepasse", Username: "leo", AvatarURL: "not-a-url"}, field: "AvatarURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := Validate(tt.form)
			assert.Contains(t, fieldErrors, tt.field)
		})
	}
}
