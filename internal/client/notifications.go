package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/taskhub/taskhub-client/internal/core/domain"
)

// NotificationsClient binds the notification service endpoints.
type NotificationsClient struct {
	c *Client
}

func NewNotificationsClient(g *Gateway, baseURL string) *NotificationsClient {
	return &NotificationsClient{c: g.Client("notifications", baseURL)}
}

func (n *NotificationsClient) ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	query := url.Values{"unread_only": {strconv.FormatBool(unreadOnly)}}

	var notifications []domain.Notification
	if err := n.c.get(ctx, apiPrefix+"/notifications", query, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *NotificationsClient) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	var notification domain.Notification
	if err := n.c.post(ctx, apiPrefix+"/notifications/"+id+"/read", nil, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}
