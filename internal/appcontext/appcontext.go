package appcontext

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Context carries the shared handles callers need to open warehouse
// sessions: the connection pool and the logger. The pool is owned by the
// collaborator that built it; this layer only borrows one connection per
// session.
type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger
}
