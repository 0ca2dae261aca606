package usecase

import (
	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain/notification"
)

// NotificationUseCase lectura y marcado de las notificaciones derivadas.
type NotificationUseCase struct {
	store *store.Store
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(s *store.Store) *NotificationUseCase {
	return &NotificationUseCase{store: s}
}

// List devuelve las notificaciones vigentes de la empresa.
func (uc *NotificationUseCase) List(companyID string) dto.NotificationListDTO {
	items := uc.store.Notifications(companyID)
	return dto.NotificationListDTO{Items: items, Unread: notification.UnreadCount(items)}
}

// MarkRead marca una notificación; false si no existe.
func (uc *NotificationUseCase) MarkRead(companyID, id string) bool {
	return uc.store.MarkNotificationRead(companyID, id)
}

// MarkAllRead marca todas como leídas.
func (uc *NotificationUseCase) MarkAllRead(companyID string) dto.NotificationListDTO {
	uc.store.MarkAllNotificationsRead(companyID)
	return uc.List(companyID)
}
