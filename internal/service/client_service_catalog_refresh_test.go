// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-access-desk/internal/accesscode"
	"github.com/MKhiriev/go-access-desk/internal/adapter"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/mock"
	"github.com/MKhiriev/go-access-desk/internal/store"
	"github.com/MKhiriev/go-access-desk/internal/validators"
	"github.com/MKhiriev/go-access-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRefreshJob(t *testing.T, ctrl *gomock.Controller) (*catalogRefreshJob, *mock.MockServerAdapter, store.PlanStorage, FormatService) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	plans := store.NewMemoryPlanStorage()
	formats := NewFormatService(accesscode.NewDefaultRegistry(), logger.Nop())

	job := NewCatalogRefreshJob(serverAdapter, plans, formats, logger.Nop()).(*catalogRefreshJob)
	return job, serverAdapter, plans, formats
}

// ── RefreshNow ──────────────────────────────────────────────────────────────

func TestCatalogRefreshJob_RefreshNow_ReplacesCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	job, serverAdapter, plans, formats := newTestRefreshJob(t, ctrl)
	ctx := context.Background()

	serverPlans := []models.Plan{{ID: "team", Name: "Team", MonthlyPrice: 49, AnnualPrice: 490}}
	serverAdapter.EXPECT().GetPlans(gomock.Any()).Return(serverPlans, nil)
	serverAdapter.EXPECT().GetFormats(gomock.Any()).
		Return([]accesscode.FormatSpec{{ID: "PIN", TotalLength: 4}}, nil)

	require.NoError(t, job.RefreshNow(ctx))

	got, err := plans.Plans(ctx)
	require.NoError(t, err)
	assert.Equal(t, serverPlans, got)

	_, err = formats.Format(ctx, "PIN")
	assert.NoError(t, err)
}

func TestCatalogRefreshJob_RefreshNow_PlansErrorKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	job, serverAdapter, plans, _ := newTestRefreshJob(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().GetPlans(gomock.Any()).Return(nil, adapter.ErrTooManyRequests)
	serverAdapter.EXPECT().GetFormats(gomock.Any()).Return(accesscode.DefaultFormats(), nil)

	err := job.RefreshNow(ctx)

	assert.ErrorIs(t, err, adapter.ErrTooManyRequests)
	got, err := plans.Plans(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultPlans(), got)
}

func TestCatalogRefreshJob_RefreshNow_EmptyCatalogRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	job, serverAdapter, plans, _ := newTestRefreshJob(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().GetPlans(gomock.Any()).Return([]models.Plan{}, nil)
	serverAdapter.EXPECT().GetFormats(gomock.Any()).Return(nil, nil)

	err := job.RefreshNow(ctx)

	assert.ErrorIs(t, err, store.ErrEmptyCatalog)
	got, _ := plans.Plans(ctx)
	assert.Len(t, got, 3)
}

func TestCatalogRefreshJob_RefreshNow_FormatsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	job, serverAdapter, _, formats := newTestRefreshJob(t, ctrl)
	ctx := context.Background()
	fetchErr := errors.New("connection refused")

	serverAdapter.EXPECT().GetPlans(gomock.Any()).Return(store.DefaultPlans(), nil)
	serverAdapter.EXPECT().GetFormats(gomock.Any()).Return(nil, fetchErr)

	err := job.RefreshNow(ctx)

	assert.ErrorIs(t, err, fetchErr)
	assert.Len(t, formats.Formats(ctx), 2)
}

func TestCatalogRefreshJob_RefreshNow_InvalidServerFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	job, serverAdapter, _, formats := newTestRefreshJob(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().GetPlans(gomock.Any()).Return(store.DefaultPlans(), nil)
	serverAdapter.EXPECT().GetFormats(gomock.Any()).Return([]accesscode.FormatSpec{
		{ID: "OK", TotalLength: 5, LetterPrefixLength: 2},
		{ID: "BAD", TotalLength: 2, LetterPrefixLength: 3},
	}, nil)

	err := job.RefreshNow(ctx)

	assert.ErrorIs(t, err, accesscode.ErrInvalidFormat)
	_, lookupErr := formats.Format(ctx, "OK")
	assert.NoError(t, lookupErr)
}

func TestCatalogRefreshJob_RefreshNow_InvalidCatalogKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	job, serverAdapter, plans, _ := newTestRefreshJob(t, ctrl)
	ctx := context.Background()

	duplicated := []models.Plan{
		{ID: "team", Name: "Team", MonthlyPrice: 49, AnnualPrice: 490},
		{ID: "team", Name: "Team (old)", MonthlyPrice: 39, AnnualPrice: 390},
	}
	serverAdapter.EXPECT().GetPlans(gomock.Any()).Return(duplicated, nil)
	serverAdapter.EXPECT().GetFormats(gomock.Any()).Return(nil, nil)

	err := job.RefreshNow(ctx)

	assert.ErrorIs(t, err, validators.ErrDuplicatePlanID)
	got, _ := plans.Plans(ctx)
	assert.Equal(t, store.DefaultPlans(), got)
}

// ── Start / Stop ────────────────────────────────────────────────────────────

func countingAdapter(ctrl *gomock.Controller, calls *atomic.Int64) *mock.MockServerAdapter {
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().GetPlans(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Plan, error) {
		calls.Add(1)
		return store.DefaultPlans(), nil
	}).AnyTimes()
	serverAdapter.EXPECT().GetFormats(gomock.Any()).Return(nil, nil).AnyTimes()
	return serverAdapter
}

func TestCatalogRefreshJob_Start_RefreshesPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	var calls atomic.Int64
	job := NewCatalogRefreshJob(countingAdapter(ctrl, &calls), store.NewMemoryPlanStorage(),
		NewFormatService(accesscode.NewDefaultRegistry(), logger.Nop()), logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestCatalogRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	var calls atomic.Int64
	job := NewCatalogRefreshJob(countingAdapter(ctrl, &calls), store.NewMemoryPlanStorage(),
		NewFormatService(accesscode.NewDefaultRegistry(), logger.Nop()), logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, calls.Load())
}

func TestCatalogRefreshJob_Start_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	var calls atomic.Int64
	job := NewCatalogRefreshJob(countingAdapter(ctrl, &calls), store.NewMemoryPlanStorage(),
		NewFormatService(accesscode.NewDefaultRegistry(), logger.Nop()), logger.Nop())

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, calls.Load())
}

func TestCatalogRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	job, _, _, _ := newTestRefreshJob(t, ctrl)

	assert.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}
