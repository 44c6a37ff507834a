package moderation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Inteegrus-Research/SP-tenderscope/auth"
	"github.com/Inteegrus-Research/SP-tenderscope/authz"
	"github.com/Inteegrus-Research/SP-tenderscope/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Tender{}, &models.Report{}))
	return db
}

type fixture struct {
	db       *gorm.DB
	svc      *Service
	owner    auth.Identity
	reporter auth.Identity
	admin    auth.Identity
	tender   models.Tender
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := openTestDB(t)

	owner := models.User{Name: "Owner", Email: "owner@example.com"}
	reporter := models.User{Name: "Reporter", Email: "reporter@example.com"}
	admin := models.User{Name: "Admin", Email: "admin@example.com", IsAdmin: true}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&reporter).Error)
	require.NoError(t, db.Create(&admin).Error)

	tender := models.Tender{Title: "Bridge Repair", Description: "Repair works", Lat: 40.7, Lng: -74.0, UserID: owner.ID}
	require.NoError(t, db.Create(&tender).Error)

	return &fixture{
		db:       db,
		svc:      NewService(db),
		owner:    auth.Identity{ID: owner.ID, Name: owner.Name},
		reporter: auth.Identity{ID: reporter.ID, Name: reporter.Name},
		admin:    auth.Identity{ID: admin.ID, Name: admin.Name, IsAdmin: true},
		tender:   tender,
	}
}

func TestFileCreatesPendingReport(t *testing.T) {
	f := newFixture(t)

	report, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	assert.Equal(t, models.ReportPending, report.Status)
	assert.Equal(t, f.reporter.ID, report.UserID)
	assert.Equal(t, f.tender.ID, report.TenderID)
	assert.Equal(t, "Reporter", report.UserName)
	assert.Equal(t, "Bridge Repair", report.TenderTitle)
}

func TestFileTrimsReason(t *testing.T) {
	f := newFixture(t)

	report, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "  misleading  ")
	require.NoError(t, err)
	assert.Equal(t, "misleading", report.Reason)
}

func TestFileEmptyReason(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyReason)
}

func TestFileTenderNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.File(context.Background(), f.reporter, 9999, "spam")
	assert.ErrorIs(t, err, ErrTenderNotFound)
}

func TestFileDuplicate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	_, err = f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam2")
	assert.ErrorIs(t, err, ErrDuplicateReport)

	var count int64
	require.NoError(t, f.db.Model(&models.Report{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFileConcurrentDuplicate(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrDuplicateReport):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	var count int64
	require.NoError(t, f.db.Model(&models.Report{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFileDistinctReportersAllowed(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	_, err = f.svc.File(context.Background(), f.owner, f.tender.ID, "also spam")
	require.NoError(t, err)
}

func TestTransitionNonAdminForbidden(t *testing.T) {
	f := newFixture(t)
	report, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	// Neither the reporter nor the tender owner may moderate.
	for _, actor := range []auth.Identity{f.reporter, f.owner} {
		_, err = f.svc.Transition(context.Background(), actor, report.ID, models.ReportResolved)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	}
}

func TestTransitionResolves(t *testing.T) {
	f := newFixture(t)
	report, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	updated, err := f.svc.Transition(context.Background(), f.admin, report.ID, models.ReportResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ReportResolved, updated.Status)
	assert.Equal(t, "Reporter", updated.UserName)
	assert.Equal(t, "Bridge Repair", updated.TenderTitle)
}

func TestTransitionIdempotent(t *testing.T) {
	f := newFixture(t)
	report, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), f.admin, report.ID, models.ReportRejected)
	require.NoError(t, err)

	again, err := f.svc.Transition(context.Background(), f.admin, report.ID, models.ReportRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ReportRejected, again.Status)
}

func TestTransitionClosedReportRefused(t *testing.T) {
	f := newFixture(t)
	report, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), f.admin, report.ID, models.ReportResolved)
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), f.admin, report.ID, models.ReportRejected)
	assert.ErrorIs(t, err, ErrReportClosed)

	var current models.Report
	require.NoError(t, f.db.First(&current, report.ID).Error)
	assert.Equal(t, models.ReportResolved, current.Status)
}

func TestTransitionToPendingInvalid(t *testing.T) {
	f := newFixture(t)
	report, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), f.admin, report.ID, models.ReportPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.Transition(context.Background(), f.admin, report.ID, models.ReportStatus("bogus"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionReportNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Transition(context.Background(), f.admin, 9999, models.ReportResolved)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestResolvedReportStillBlocksRefiling(t *testing.T) {
	f := newFixture(t)

	report, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)
	assert.Equal(t, models.ReportPending, report.Status)

	resolved, err := f.svc.Transition(context.Background(), f.admin, report.ID, models.ReportResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ReportResolved, resolved.Status)

	_, err = f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam2")
	assert.ErrorIs(t, err, ErrDuplicateReport)
}

func TestListForReporter(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	mine, err := f.svc.ListForReporter(context.Background(), f.reporter.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Bridge Repair", mine[0].TenderTitle)

	none, err := f.svc.ListForReporter(context.Background(), f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindAfterFile(t *testing.T) {
	f := newFixture(t)
	filed, err := f.svc.File(context.Background(), f.reporter, f.tender.ID, "spam")
	require.NoError(t, err)

	found, err := f.svc.Find(context.Background(), f.tender.ID, f.reporter.ID)
	require.NoError(t, err)
	assert.Equal(t, filed.ID, found.ID)

	_, err = f.svc.Find(context.Background(), f.tender.ID, f.admin.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
