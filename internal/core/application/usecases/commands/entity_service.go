package commands

import (
	"context"
	"fmt"

	"tracking/internal/core/application/validation"
	"tracking/internal/pkg/result"
)

// EntityService is the validated create path shared by simple reference
// entities. Each entity kind only supplies its own validator and store.
//
// Example:
//
//	senders := commands.NewEntityService[*party.Sender](senderUoWFactory,
//	    validation.NewContactValidator[*party.Sender]())
//	res := senders.AddEntity(ctx, sender)
type EntityService[T any] struct {
	uowFactory EntityUoWFactory[T]
	validator  validation.EntityValidator[T]
}

func NewEntityService[T any](
	uowFactory EntityUoWFactory[T],
	validator validation.EntityValidator[T],
) EntityService[T] {
	return EntityService[T]{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// AddEntity validates and stores entity. Validation failures carry every
// message; storage faults and panics on the store path become a failure
// carrying the fault message.
func (s EntityService[T]) AddEntity(ctx context.Context, entity T) (res result.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Failure[T](fmt.Sprint(r))
		}
	}()

	if messages := s.validator.Validate(entity); len(messages) > 0 {
		return result.Failures[T](messages)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result.FromError[T](err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EntityRepository().Add(ctx, entity); err != nil {
		return result.FromError[T](err)
	}

	if err := uow.Commit(ctx); err != nil {
		return result.FromError[T](err)
	}

	return result.Success(entity)
}
