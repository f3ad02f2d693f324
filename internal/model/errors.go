package model

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrRoundNotFound       = errors.New("round not found")
	ErrBetNotFound         = errors.New("bet not found")
	ErrBettingClosed       = errors.New("betting is not currently open")
	ErrInvalidColor        = errors.New("invalid color")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrBetTooSmall         = errors.New("bet amount below minimum")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDuplicateUsername   = errors.New("username already taken")
)
