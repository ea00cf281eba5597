package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/mapper"
	"github.com/gradi-as/contractor-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ClientService handles business logic for clients
type ClientService struct {
	clientRepo *repository.ClientRepository
	logger     *zap.Logger
}

func NewClientService(clientRepo *repository.ClientRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (s *ClientService) Create(ctx context.Context, req *domain.CreateClientRequest) (*domain.ClientDTO, error) {
	client := &domain.Client{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	dto := mapper.ToClientDTO(client)
	return &dto, nil
}

func (s *ClientService) GetByID(ctx context.Context, id uint) (*domain.ClientDTO, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	dto := mapper.ToClientDTO(client)
	return &dto, nil
}

func (s *ClientService) Update(ctx context.Context, id uint, req *domain.UpdateClientRequest) (*domain.ClientDTO, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	dto := mapper.ToClientDTO(client)
	return &dto, nil
}

func (s *ClientService) Delete(ctx context.Context, id uint) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to get client: %w", err)
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *ClientService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	clients, total, err := s.clientRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	dtos := make([]domain.ClientDTO, len(clients))
	for i, c := range clients {
		dtos[i] = mapper.ToClientDTO(&c)
	}

	return paginated(dtos, total, page, pageSize), nil
}

// paginated wraps a result page with its paging metadata
func paginated(data interface{}, total int64, page, pageSize int) *domain.PaginatedResponse {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return &domain.PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
