package web

import (
	"fmt"
	"net/http"
	"testing"

	"microblog/models"
)

func TestCreatePostFlow(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	signup(t, srv, author, "roman")
	group, err := models.GroupCreate("Test group", "test-slug", "a group")
	if err != nil {
		t.Fatalf("GroupCreate: %v", err)
	}

	resp := postForm(t, srv, author, "/create/", formValues(map[string]string{
		"text":  "hello from the create form",
		"group": fmt.Sprintf("%d", group.ID),
	}))
	if got := location(t, resp); got != "/profile/roman/" {
		t.Fatalf("create redirect = %q, want /profile/roman/", got)
	}
	if n := models.PostCount(); n != 1 {
		t.Fatalf("post count = %d, want 1", n)
	}

	// The new post shows up exactly once on index page 1.
	resp = get(t, srv, newClient(t), "/")
	page := body(t, resp)
	if items := listItems(page); items != 1 {
		t.Errorf("index page 1 lists %d posts, want 1", items)
	}
	if !contains(page, "hello from the") {
		t.Error("index page is missing the new post")
	}
}

func TestCreatePostEmptyText(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	signup(t, srv, author, "roman")

	resp := postForm(t, srv, author, "/create/", formValues(map[string]string{"text": ""}))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty text create: status %d, want 200 re-render", resp.StatusCode)
	}
	if page := body(t, resp); !contains(page, "Text must not be empty") {
		t.Error("re-rendered form is missing the field error")
	}
	if n := models.PostCount(); n != 0 {
		t.Errorf("post count = %d after failed create, want 0", n)
	}
}

func TestCreatePostBadGroup(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	signup(t, srv, author, "roman")

	resp := postForm(t, srv, author, "/create/", formValues(map[string]string{
		"text":  "valid text",
		"group": "9999",
	}))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bad group create: status %d, want 200 re-render", resp.StatusCode)
	}
	if page := body(t, resp); !contains(page, "Pick an existing group") {
		t.Error("re-rendered form is missing the group error")
	}
	if n := models.PostCount(); n != 0 {
		t.Errorf("post count = %d after failed create, want 0", n)
	}
}

func TestEditPostAsAuthor(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	authorUser := signup(t, srv, author, "roman")
	group, err := models.GroupCreate("New group", "new-slug", "")
	if err != nil {
		t.Fatalf("GroupCreate: %v", err)
	}
	post, err := models.PostCreate(authorUser, "original text", nil)
	if err != nil {
		t.Fatalf("PostCreate: %v", err)
	}
	detail := fmt.Sprintf("/posts/%d/", post.ID)

	// GET pre-fills the form.
	resp := get(t, srv, author, detail+"edit/")
	if page := body(t, resp); !contains(page, "original text") {
		t.Error("edit form is not pre-filled with the post text")
	}

	resp = postForm(t, srv, author, detail+"edit/", formValues(map[string]string{
		"text":  "edited text",
		"group": fmt.Sprintf("%d", group.ID),
	}))
	if got := location(t, resp); got != detail {
		t.Errorf("edit redirect = %q, want %q", got, detail)
	}
	reloaded, _ := models.PostByID(post.ID)
	if reloaded.Text != "edited text" {
		t.Errorf("text = %q, want %q", reloaded.Text, "edited text")
	}
	if reloaded.GroupID == nil || *reloaded.GroupID != group.ID {
		t.Errorf("group = %v, want %d", reloaded.GroupID, group.ID)
	}
	if reloaded.AuthorID != authorUser.ID || reloaded.ID != post.ID {
		t.Error("edit changed author or id")
	}
}

func TestEditPostAsNonAuthor(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	another := newClient(t)
	authorUser := signup(t, srv, author, "roman")
	signup(t, srv, another, "pekarev")
	post, err := models.PostCreate(authorUser, "untouchable", nil)
	if err != nil {
		t.Fatalf("PostCreate: %v", err)
	}
	detail := fmt.Sprintf("/posts/%d/", post.ID)

	resp := postForm(t, srv, another, detail+"edit/", formValues(map[string]string{
		"text": "hijacked",
	}))
	if got := location(t, resp); got != detail {
		t.Errorf("non-author edit redirect = %q, want %q", got, detail)
	}
	reloaded, _ := models.PostByID(post.ID)
	if reloaded.Text != "untouchable" || reloaded.AuthorID != authorUser.ID {
		t.Error("non-author edit changed the post")
	}
}

func TestEditPostEmptyText(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	authorUser := signup(t, srv, author, "roman")
	post, err := models.PostCreate(authorUser, "keep me", nil)
	if err != nil {
		t.Fatalf("PostCreate: %v", err)
	}

	resp := postForm(t, srv, author, fmt.Sprintf("/posts/%d/edit/", post.ID),
		formValues(map[string]string{"text": ""}))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty text edit: status %d, want 200 re-render", resp.StatusCode)
	}
	if page := body(t, resp); !contains(page, "Text must not be empty") {
		t.Error("re-rendered form is missing the field error")
	}
	reloaded, _ := models.PostByID(post.ID)
	if reloaded.Text != "keep me" {
		t.Errorf("failed edit changed text to %q", reloaded.Text)
	}
}

func TestEditMissingPost(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	signup(t, srv, author, "roman")

	resp := get(t, srv, author, "/posts/424242/edit/")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("edit of missing post: status %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCommentFlow(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	commenter := newClient(t)
	authorUser := signup(t, srv, author, "roman")
	signup(t, srv, commenter, "pekarev")
	post, err := models.PostCreate(authorUser, "comment on me", nil)
	if err != nil {
		t.Fatalf("PostCreate: %v", err)
	}
	detail := fmt.Sprintf("/posts/%d/", post.ID)

	resp := postForm(t, srv, commenter, detail+"comment/", formValues(map[string]string{
		"text": "a thoughtful remark",
	}))
	if got := location(t, resp); got != detail {
		t.Errorf("comment redirect = %q, want %q", got, detail)
	}
	resp = get(t, srv, newClient(t), detail)
	if page := body(t, resp); !contains(page, "a thoughtful remark") {
		t.Error("detail page is missing the new comment")
	}

	// Empty comment still redirects, nothing is written.
	resp = postForm(t, srv, commenter, detail+"comment/", formValues(map[string]string{"text": ""}))
	if got := location(t, resp); got != detail {
		t.Errorf("empty comment redirect = %q, want %q", got, detail)
	}
	comments, _ := models.CommentsForPost(post.ID)
	if len(comments) != 1 {
		t.Errorf("comment count = %d, want 1", len(comments))
	}
}

func TestGroupListingIsolation(t *testing.T) {
	srv := setupServer(t)
	author := newClient(t)
	authorUser := signup(t, srv, author, "roman")
	g, err := models.GroupCreate("Group G", "group-g", "")
	if err != nil {
		t.Fatalf("GroupCreate: %v", err)
	}
	if _, err := models.GroupCreate("Group H", "group-h", ""); err != nil {
		t.Fatalf("GroupCreate: %v", err)
	}
	if _, err := models.PostCreate(authorUser, "filed under G", &g.ID); err != nil {
		t.Fatalf("PostCreate: %v", err)
	}

	resp := get(t, srv, newClient(t), "/group/group-g/")
	if page := body(t, resp); listItems(page) != 1 || !contains(page, "filed under G") {
		t.Error("G's listing must contain the post")
	}
	resp = get(t, srv, newClient(t), "/group/group-h/")
	if page := body(t, resp); listItems(page) != 0 {
		t.Error("H's listing must not contain G's post")
	}
}
