package router

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) dictRouter(r fiber.Router, auth fiber.Handler) {
	typeGroup := r.Group("/system/dict/type", auth)
	{
		typeGroup.Get("/", rt.requirePerm("system:dict:list"), rt.listDictTypes)
		typeGroup.Post("/", rt.requirePerm("system:dict:add"), rt.audit("字典管理", model.BusinessTypeCreate), rt.createDictType)
		typeGroup.Put("/", rt.requirePerm("system:dict:edit"), rt.audit("字典管理", model.BusinessTypeUpdate), rt.updateDictType)
		typeGroup.Get("/option", rt.dictTypeOption)
		typeGroup.Get("/:ids", rt.requirePerm("system:dict:query"), rt.getDictType)
		typeGroup.Delete("/:ids", rt.requirePerm("system:dict:remove"), rt.audit("字典管理", model.BusinessTypeDelete), rt.deleteDictTypes)
	}

	dataGroup := r.Group("/system/dict/data", auth)
	{
		dataGroup.Get("/", rt.requirePerm("system:dict:list"), rt.listDictDatas)
		dataGroup.Post("/", rt.requirePerm("system:dict:add"), rt.audit("字典管理", model.BusinessTypeCreate), rt.createDictData)
		dataGroup.Put("/", rt.requirePerm("system:dict:edit"), rt.audit("字典管理", model.BusinessTypeUpdate), rt.updateDictData)
		dataGroup.Get("/type/:dictType", rt.dictDataByType)
		dataGroup.Get("/:ids", rt.requirePerm("system:dict:query"), rt.getDictData)
		dataGroup.Delete("/:ids", rt.requirePerm("system:dict:remove"), rt.audit("字典管理", model.BusinessTypeDelete), rt.deleteDictDatas)
	}
}

func (rt *Router) listDictTypes(c *fiber.Ctx) error {
	query := &model.DictTypeQuery{
		PageNum:  queryInt(c, "pageNum"),
		PageSize: queryInt(c, "pageSize"),
		DictName: c.Query("dictName"),
		DictType: c.Query("dictType"),
		Status:   c.Query("status"),
	}
	types, total, err := rt.Repos.Dict.ListDictTypes(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, types, total)
}

func (rt *Router) getDictType(c *fiber.Ctx) error {
	dictId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid dict id")
	}
	dt, err := rt.Repos.Dict.GetDictTypeById(dictId)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "dict type not found")
	}
	return http.WithRepJSON(c, dt)
}

// dictTypeOption 全量字典类型，表单下拉用
func (rt *Router) dictTypeOption(c *fiber.Ctx) error {
	types, err := rt.Repos.Dict.ListAllDictTypes()
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepJSON(c, types)
}

func (rt *Router) createDictType(c *fiber.Ctx) error {
	var dt model.DictType
	if err := c.BodyParser(&dt); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Dict.CreateDictType(&dt); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updateDictType(c *fiber.Ctx) error {
	var dt model.DictType
	if err := c.BodyParser(&dt); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	updates := map[string]any{
		"dict_name": dt.DictName,
		"dict_type": dt.DictType,
		"status":    dt.Status,
		"remark":    dt.Remark,
	}
	if err := rt.Services.Dict.UpdateDictType(dt.DictId, updates); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deleteDictTypes(c *fiber.Ctx) error {
	dictIds, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid dict ids")
	}
	if err := rt.Services.Dict.DeleteDictTypes(dictIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) listDictDatas(c *fiber.Ctx) error {
	query := &model.DictDataQuery{
		PageNum:   queryInt(c, "pageNum"),
		PageSize:  queryInt(c, "pageSize"),
		DictType:  c.Query("dictType"),
		DictLabel: c.Query("dictLabel"),
		Status:    c.Query("status"),
	}
	datas, total, err := rt.Repos.Dict.ListDictDatas(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, datas, total)
}

func (rt *Router) getDictData(c *fiber.Ctx) error {
	dictCode, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid dict code")
	}
	dd, err := rt.Repos.Dict.GetDictDataById(dictCode)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "dict data not found")
	}
	return http.WithRepJSON(c, dd)
}

// dictDataByType 按类型取启用的字典数据
func (rt *Router) dictDataByType(c *fiber.Ctx) error {
	datas, err := rt.Repos.Dict.ListDictDatasByType(c.Params("dictType"))
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepJSON(c, datas)
}

func (rt *Router) createDictData(c *fiber.Ctx) error {
	var dd model.DictData
	if err := c.BodyParser(&dd); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Dict.CreateDictData(&dd); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updateDictData(c *fiber.Ctx) error {
	var dd model.DictData
	if err := c.BodyParser(&dd); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	updates := map[string]any{
		"dict_sort":  dd.DictSort,
		"dict_label": dd.DictLabel,
		"dict_value": dd.DictValue,
		"dict_type":  dd.DictType,
		"css_class":  dd.CssClass,
		"list_class": dd.ListClass,
		"is_default": dd.IsDefault,
		"status":     dd.Status,
		"remark":     dd.Remark,
	}
	if err := rt.Services.Dict.UpdateDictData(dd.DictCode, updates); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deleteDictDatas(c *fiber.Ctx) error {
	dictCodes, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid dict codes")
	}
	if err := rt.Services.Dict.DeleteDictDatas(dictCodes); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}
