package sidebar_test

import (
	"testing"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/content/sidebar"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"github.com/mx-space/blog/internal/pkg/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int { return &v }

func TestCreateDefaultsToEnabled(t *testing.T) {
	svc := sidebar.NewService(dbtest.New(t))

	sb, err := svc.Create(&sidebar.CreateSideBarDTO{Name: "about", Content: "<p>hi</p>"})
	require.NoError(t, err)
	assert.True(t, sb.Enabled())
	assert.Equal(t, 1, sb.Sequence)
	assert.Equal(t, sb.CreatedTime, sb.LastModTime)
}

func TestCreateKeepsExplicitDisable(t *testing.T) {
	svc := sidebar.NewService(dbtest.New(t))

	sb, err := svc.Create(&sidebar.CreateSideBarDTO{Name: "ads", Content: "x", IsEnable: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, sb.Enabled())

	got, err := svc.GetByID(sb.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled())
}

func TestCreateRejectsDuplicateSequence(t *testing.T) {
	svc := sidebar.NewService(dbtest.New(t))
	_, err := svc.Create(&sidebar.CreateSideBarDTO{Name: "a", Content: "x", Sequence: intPtr(1)})
	require.NoError(t, err)

	_, err = svc.Create(&sidebar.CreateSideBarDTO{Name: "b", Content: "x", Sequence: intPtr(1)})
	assert.ErrorIs(t, err, dberr.ErrDuplicate)
}

func TestCreateRequiresName(t *testing.T) {
	svc := sidebar.NewService(dbtest.New(t))
	_, err := svc.Create(&sidebar.CreateSideBarDTO{Content: "x"})
	assert.ErrorIs(t, err, dberr.ErrRequired)
}

func TestListEnabled(t *testing.T) {
	svc := sidebar.NewService(dbtest.New(t))
	_, err := svc.Create(&sidebar.CreateSideBarDTO{Name: "third", Content: "x", Sequence: intPtr(3)})
	require.NoError(t, err)
	_, err = svc.Create(&sidebar.CreateSideBarDTO{Name: "first", Content: "x", Sequence: intPtr(1)})
	require.NoError(t, err)
	_, err = svc.Create(&sidebar.CreateSideBarDTO{Name: "off", Content: "x", Sequence: intPtr(2), IsEnable: boolPtr(false)})
	require.NoError(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "off", all[1].Name)

	enabled, err := svc.ListEnabled()
	require.NoError(t, err)
	require.Len(t, enabled, 2)
	assert.Equal(t, "first", enabled[0].Name)
	assert.Equal(t, "third", enabled[1].Name)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := sidebar.NewService(dbtest.New(t))
	sb, err := svc.Create(&sidebar.CreateSideBarDTO{Name: "about", Content: "x"})
	require.NoError(t, err)

	content := "<p>updated</p>"
	updated, err := svc.Update(sb.ID, &sidebar.UpdateSideBarDTO{Content: &content, IsEnable: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, content, updated.Content)
	assert.False(t, updated.Enabled())

	reloaded, err := svc.GetByID(sb.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Enabled())

	require.NoError(t, svc.Delete(sb.ID))
	gone, err := svc.GetByID(sb.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDirectInsertKeepsDisabled(t *testing.T) {
	db := dbtest.New(t)
	off := false
	require.NoError(t, db.Create(&models.SideBarModel{Name: "raw", Content: "x", Sequence: 1, IsEnable: &off}).Error)
	require.NoError(t, db.Create(&models.SideBarModel{Name: "default", Content: "x", Sequence: 2}).Error)

	enabled, err := sidebar.NewService(db).ListEnabled()
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "default", enabled[0].Name)
}
