package commands

import (
	"context"

	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/services"
	"geoshop/internal/core/ports"
)

// subscriptionOf looks up whether the client or the invoice contact of o
// holds a subscription.
func subscriptionOf(ctx context.Context, identities ports.IdentityRepository, o *order.Order) (services.Subscription, error) {
	client, err := identities.Get(ctx, o.ClientID())
	if err != nil {
		return services.Subscription{}, err
	}
	sub := services.Subscription{Client: client.IsSubscribed()}

	if contactID := o.InvoiceContactID(); contactID != nil {
		contact, err := identities.Get(ctx, *contactID)
		if err != nil {
			return services.Subscription{}, err
		}
		sub.InvoiceContact = contact.IsSubscribed()
	}
	return sub, nil
}

// publish drains the events of the orders once their changes are committed.
func publish(dispatcher EventDispatcher, orders ...*order.Order) {
	for _, o := range orders {
		if events := o.PullEvents(); len(events) > 0 {
			dispatcher.Dispatch(events...)
		}
	}
}
