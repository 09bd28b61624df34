package rbac

import (
	"sort"
	"strings"
	"sync"

	"go-payroll/internal/domain"
	"go-payroll/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Authorize(role, resource, action string) (bool, error)
	PermissionsForRole(role string) ([]domain.PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		enforcer: enforcer,
		logger:   l,
	}
}

// NewDefaultService wires the built-in policy set.
func NewDefaultService(logger ...*zap.Logger) (Service, error) {
	enforcer, err := infra.NewEnforcer(ModelText, DefaultPolicies(), DefaultGroupings())
	if err != nil {
		return nil, err
	}
	return NewService(enforcer, logger...), nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	return s.Authorize(req.Role, req.Resource, req.Action)
}

// Authorize adalah satu-satunya titik keputusan (role, operasi).
func (s *service) Authorize(role, resource, action string) (bool, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsForRole(role string) ([]domain.PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	perms := make([]domain.PermissionResponse, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		perms = append(perms, domain.PermissionResponse{Resource: rule[1], Action: rule[2]})
	}

	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource != perms[j].Resource {
			return perms[i].Resource < perms[j].Resource
		}
		return perms[i].Action < perms[j].Action
	})
	return perms, nil
}
