package services

// EmailValidator проверяет формат адреса электронной почты.
// false без ошибки означает некорректный адрес; ошибка означает, что проверка не состоялась.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}
