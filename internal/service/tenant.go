package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/renthub/rental-service/internal/model"
)

const tenantIDPrefix = "CS"

func (s *Service) GetTenant(ctx context.Context, id string) (model.Tenant, error) {
	return s.repo.GetTenant(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	return s.repo.ListTenants(ctx)
}

// NextTenantID scans existing ids with the CS prefix, takes the highest
// numeric suffix and formats max+1 zero-padded to three digits. Ids
// past CS999 simply grow a digit; malformed ids are ignored.
func (s *Service) NextTenantID(ctx context.Context) (string, error) {
	tenants, err := s.repo.ListTenants(ctx)
	if err != nil {
		return "", errors.Wrap(err, "list tenants")
	}

	maxNum := 0
	for _, t := range tenants {
		if !strings.HasPrefix(t.ID, tenantIDPrefix) {
			continue
		}
		num, err := strconv.Atoi(t.ID[len(tenantIDPrefix):])
		if err != nil {
			continue
		}
		if num > maxNum {
			maxNum = num
		}
	}

	return fmt.Sprintf("%s%03d", tenantIDPrefix, maxNum+1), nil
}

func (s *Service) CreateTenant(ctx context.Context, req model.CreateTenantRequest) (model.Tenant, error) {
	id, err := s.NextTenantID(ctx)
	if err != nil {
		return model.Tenant{}, err
	}

	membership := req.Membership
	if membership == "" {
		membership = model.MemberActive
	}

	tenant := model.Tenant{
		ID:         id,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		JoinDate:   s.today(),
		Membership: membership,
	}
	if err := s.repo.PutTenant(ctx, tenant); err != nil {
		return model.Tenant{}, errors.Wrap(err, "put tenant")
	}
	return tenant, nil
}

// UpdateTenant edits contact and membership fields. The id and the
// join date are immutable.
func (s *Service) UpdateTenant(ctx context.Context, id string, req model.CreateTenantRequest) (model.Tenant, error) {
	tenant, err := s.repo.GetTenant(ctx, id)
	if err != nil {
		return model.Tenant{}, errors.Wrap(err, "get tenant")
	}

	tenant.Name = req.Name
	tenant.Phone = req.Phone
	tenant.Email = req.Email
	tenant.Address = req.Address
	if req.Membership != "" {
		tenant.Membership = req.Membership
	}

	if err := s.repo.PutTenant(ctx, tenant); err != nil {
		return model.Tenant{}, errors.Wrap(err, "put tenant")
	}
	return tenant, nil
}

func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	return s.repo.DeleteTenant(ctx, id)
}
