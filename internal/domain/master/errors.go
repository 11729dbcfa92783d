package master

import "errors"

var ErrBankNotFound = errors.New("bank not found")
