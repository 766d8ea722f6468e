package user_test

import (
	"testing"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/auth/user"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"github.com/mx-space/blog/internal/pkg/dbtest"
	"github.com/mx-space/blog/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHashesPassword(t *testing.T) {
	svc := user.NewService(dbtest.New(t))

	u, err := svc.Create(&user.CreateUserDTO{Username: "alice", Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.Password)
	assert.True(t, u.CheckPassword("s3cret"))
	assert.True(t, u.IsActive)
	assert.False(t, u.IsStaff)
	assert.False(t, u.DateJoined.IsZero())
	assert.Equal(t, u.CreatedTime, u.LastModTime)
	assert.Equal(t, "alice@example.com", u.String())
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	svc := user.NewService(dbtest.New(t))
	_, err := svc.Create(&user.CreateUserDTO{Username: "alice"})
	require.NoError(t, err)

	_, err = svc.Create(&user.CreateUserDTO{Username: "alice"})
	assert.ErrorIs(t, err, dberr.ErrDuplicate)
}

func TestCreateRejectsBadEmail(t *testing.T) {
	svc := user.NewService(dbtest.New(t))
	_, err := svc.Create(&user.CreateUserDTO{Username: "alice", Email: "not-an-email"})
	assert.ErrorIs(t, err, dberr.ErrInvalid)
}

func TestListNewestFirst(t *testing.T) {
	svc := user.NewService(dbtest.New(t))
	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(&user.CreateUserDTO{Username: name})
		require.NoError(t, err)
	}

	items, pag, err := svc.List(pagination.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), pag.Total)
	assert.True(t, pag.HasNextPage)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].Username)
	assert.Equal(t, "b", items[1].Username)
}

func TestAuthenticate(t *testing.T) {
	svc := user.NewService(dbtest.New(t))
	created, err := svc.CreateSuperuser("admin", "admin@example.com", "pass1234")
	require.NoError(t, err)
	assert.True(t, created.IsSuperuser)
	assert.True(t, created.IsStaff)

	u, err := svc.Authenticate("admin", "pass1234")
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)

	reloaded, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.LastLogin)

	_, err = svc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	_, err = svc.Authenticate("nobody", "pass1234")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	inactive := false
	_, err = svc.Update(u.ID, &user.UpdateUserDTO{IsActive: &inactive})
	require.NoError(t, err)
	_, err = svc.Authenticate("admin", "pass1234")
	assert.ErrorIs(t, err, user.ErrInactive)
}

func TestUnusablePassword(t *testing.T) {
	svc := user.NewService(dbtest.New(t))
	u, err := svc.Create(&user.CreateUserDTO{Username: "oauth"})
	require.NoError(t, err)
	assert.False(t, u.HasUsablePassword())

	_, err = svc.Authenticate("oauth", "")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestPasswordChanges(t *testing.T) {
	svc := user.NewService(dbtest.New(t))
	u, err := svc.Create(&user.CreateUserDTO{Username: "alice", Password: "old-pass"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(u.ID, "bad", "new-pass"), user.ErrWrongPassword)
	assert.ErrorIs(t, svc.ChangePassword(u.ID, "old-pass", "old-pass"), user.ErrPasswordSameAsOld)
	require.NoError(t, svc.ChangePassword(u.ID, "old-pass", "new-pass"))

	_, err = svc.Authenticate("alice", "new-pass")
	require.NoError(t, err)

	require.NoError(t, svc.SetPassword(u.ID, "reset-pass"))
	_, err = svc.Authenticate("alice", "reset-pass")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetPassword(u.ID, ""), models.ErrEmptyPassword)
	assert.ErrorIs(t, svc.SetPassword(999, "x"), dberr.ErrNotFound)
}

func TestUpdateStampsLastModTime(t *testing.T) {
	svc := user.NewService(dbtest.New(t))
	u, err := svc.Create(&user.CreateUserDTO{Username: "alice"})
	require.NoError(t, err)

	nick := "Ally"
	updated, err := svc.Update(u.ID, &user.UpdateUserDTO{Nickname: &nick})
	require.NoError(t, err)
	assert.False(t, updated.LastModTime.Before(u.LastModTime))
	assert.Equal(t, "Ally", updated.DisplayName())

	missing, err := svc.Update(999, &user.UpdateUserDTO{Nickname: &nick})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteCascadesArticles(t *testing.T) {
	db := dbtest.New(t)
	svc := user.NewService(db)
	author, err := svc.Create(&user.CreateUserDTO{Username: "alice"})
	require.NoError(t, err)
	other, err := svc.Create(&user.CreateUserDTO{Username: "bob"})
	require.NoError(t, err)

	cat := models.CategoryModel{Name: "misc"}
	require.NoError(t, db.Create(&cat).Error)
	tag := models.TagModel{Name: "go"}
	require.NoError(t, db.Create(&tag).Error)
	require.NoError(t, db.Create(&models.ArticleModel{Title: "mine", Body: "x", AuthorID: author.ID, CategoryID: cat.ID, Tags: []models.TagModel{tag}}).Error)
	require.NoError(t, db.Create(&models.ArticleModel{Title: "theirs", Body: "x", AuthorID: other.ID, CategoryID: cat.ID}).Error)

	require.NoError(t, svc.Delete(author.ID))

	var titles []string
	require.NoError(t, db.Model(&models.ArticleModel{}).Pluck("title", &titles).Error)
	assert.Equal(t, []string{"theirs"}, titles)

	gone, err := svc.GetByID(author.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCreateStampsLastModTimeOnReload(t *testing.T) {
	svc := user.NewService(dbtest.New(t))
	u, err := svc.Create(&user.CreateUserDTO{Username: "alice"})
	require.NoError(t, err)

	got, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.LastModTime.IsZero())
	assert.True(t, got.LastModTime.Equal(got.CreatedTime))
}
