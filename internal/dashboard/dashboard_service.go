package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"go-payroll/internal/attendance"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	SummaryStatsKeyPrefix = "dashboard:summary_stats:"
	DepartmentDistKey     = "dashboard:department_distribution"
	cacheTTL              = 5 * time.Minute
	growthLookback        = 30
	day                   = 24 * time.Hour
	dateLayout            = "2006-01-02"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	SummaryStats(ctx context.Context) (SummaryStatsResponse, error)
	DepartmentDistribution(ctx context.Context) ([]DepartmentSlice, error)
}

type service struct {
	repo       Repository
	attendance attendance.Repository
	rdb        *redis.Client
	sf         *singleflight.Group
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(repo Repository, attendanceRepo attendance.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:       repo,
		attendance: attendanceRepo,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) SummaryStats(ctx context.Context) (SummaryStatsResponse, error) {
	now := s.now().UTC()
	key := SummaryStatsKeyPrefix + now.Format(dateLayout)
	return cached(ctx, s, key, func() (SummaryStatsResponse, error) {
		return s.computeSummary(ctx, now)
	})
}

func (s *service) DepartmentDistribution(ctx context.Context) ([]DepartmentSlice, error) {
	return cached(ctx, s, DepartmentDistKey, func() ([]DepartmentSlice, error) {
		rows, err := s.repo.DepartmentHeadcounts(ctx)
		if err != nil {
			return nil, err
		}

		out := make([]DepartmentSlice, 0, len(rows))
		for i, row := range rows {
			out = append(out, DepartmentSlice{
				Name:  row.Department,
				Count: row.Count,
				Color: colorAt(i),
			})
		}
		return out, nil
	})
}

func (s *service) computeSummary(ctx context.Context, now time.Time) (SummaryStatsResponse, error) {
	var resp SummaryStatsResponse

	today := now.Truncate(day)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthAgo := now.AddDate(0, 0, -growthLookback)
	lastMonthStart := time.Date(monthAgo.Year(), monthAgo.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonthEnd := monthStart.AddDate(0, 0, -1)

	active, err := s.repo.CountActiveEmployees(ctx, nil)
	if err != nil {
		return resp, err
	}
	resp.TotalEmployees = active

	activeMonthAgo, err := s.repo.CountActiveEmployees(ctx, &monthAgo)
	if err != nil {
		return resp, err
	}
	if activeMonthAgo > 0 {
		resp.EmployeeGrowth = round1(float64(active-activeMonthAgo) / float64(activeMonthAgo) * 100)
	}

	if resp.TotalDepartments, err = s.repo.CountActiveDepartments(ctx); err != nil {
		return resp, err
	}

	avg, err := s.repo.AverageActiveBaseSalary(ctx)
	if err != nil {
		return resp, err
	}
	resp.AverageSalary = avg.Round(2)

	attended, err := s.attendance.CountByStatusesBetween(ctx, attendance.AttendedStatuses, monthStart, today)
	if err != nil {
		return resp, err
	}
	expected := active * daysBetween(monthStart, today)
	if expected > 0 {
		resp.AttendanceRate = round1(float64(attended) / float64(expected) * 100)
	}

	lastAttended, err := s.attendance.CountByStatusesBetween(ctx, attendance.AttendedStatuses, lastMonthStart, lastMonthEnd)
	if err != nil {
		return resp, err
	}
	lastExpected := activeMonthAgo * daysBetween(lastMonthStart, lastMonthEnd)
	if lastExpected > 0 {
		lastRate := float64(lastAttended) / float64(lastExpected) * 100
		resp.AttendanceRateGrowth = round1(resp.AttendanceRate - lastRate)
	}

	return resp, nil
}

// cached membaca dari redis dulu, lalu load sekali per key untuk request yang bersamaan.
func cached[T any](ctx context.Context, s *service, key string, load func() (T, error)) (T, error) {
	var zero T

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var out T
			if err := json.Unmarshal([]byte(raw), &out); err == nil {
				return out, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		out, err := load()
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if data, err := json.Marshal(out); err == nil {
				if err := s.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
					s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return out, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// daysBetween menghitung hari inklusif.
func daysBetween(from, to time.Time) int64 {
	if to.Before(from) {
		return 0
	}
	return int64(to.Sub(from)/day) + 1
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
