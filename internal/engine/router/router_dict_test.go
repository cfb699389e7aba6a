package router

import (
	"net/http/httptest"
	"testing"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeDictRepo struct {
	repo.IDictRepository
	gotQuery *model.DictDataQuery
}

func (f *fakeDictRepo) ListDictDatas(query *model.DictDataQuery) ([]model.DictData, int64, error) {
	f.gotQuery = query
	return []model.DictData{{DictCode: 1, DictType: "sys_user_sex", DictLabel: "男"}}, 1, nil
}

func TestListDictDatasFilterByType(t *testing.T) {
	dictRepo := &fakeDictRepo{}
	rt := &Router{Repos: &repo.Repositories{Dict: dictRepo}}

	app := fiber.New()
	app.Get("/system/dict/data", rt.listDictDatas)

	resp, err := app.Test(httptest.NewRequest("GET", "/system/dict/data?dictType=sys_user_sex&status=0", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "sys_user_sex", dictRepo.gotQuery.DictType)
	assert.Equal(t, "0", dictRepo.gotQuery.Status)
}
