package service

import (
	"github.com/julisunkan/LearnMan/internal/service/auth"
	"github.com/julisunkan/LearnMan/internal/service/catalog"
	"github.com/julisunkan/LearnMan/internal/service/certificate"
	"github.com/julisunkan/LearnMan/internal/service/grader"
	"github.com/julisunkan/LearnMan/internal/service/importer"
)

type Collection struct {
	Auth        *auth.Service
	Importer    *importer.Service
	Catalog     *catalog.Service
	Grader      *grader.Service
	Certificate *certificate.Service
}
