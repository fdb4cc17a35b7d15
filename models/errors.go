package models

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Ошибки движка фазового процесса.
// Все они локальные и восстановимые, контроллер транслирует их в HTTP статусы.
var (
	ErrInvalidTransition      = errors.New("недопустимый переход между фазами")
	ErrWorkspaceLocked        = errors.New("рабочая область заблокирована вручную")
	ErrPermissionDenied       = errors.New("операция недоступна в текущей фазе")
	ErrReadOnly               = errors.New("фаза доступна только для чтения")
	ErrPrincipalAlreadyExists = errors.New("основная минута уже существует, используйте замену")
	ErrMissingFeedback        = errors.New("при отклонении обязателен комментарий")
	ErrConcurrentModification = errors.New("состояние изменилось параллельно, повторите запрос")
	ErrAlreadyDecided         = errors.New("по задаче согласования уже вынесено решение")
	ErrRecNotFound            = errors.New("запись не найдена")
)

// PreconditionError - переход допустим по графу фаз,
// но не выполнены блокирующие условия; Unmet перечисляет их для пользователя
type PreconditionError struct {
	Unmet []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("не выполнены условия перехода: %s", strings.Join(e.Unmet, "; "))
}

func NewPreconditionError(unmet ...string) error {
	return &PreconditionError{Unmet: unmet}
}

func AsPreconditionError(err error) (*PreconditionError, bool) {
	pErr := new(PreconditionError)
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
