package router

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) configRouter(r fiber.Router, auth fiber.Handler) {
	configGroup := r.Group("/system/config", auth)
	{
		configGroup.Get("/", rt.requirePerm("system:config:list"), rt.listConfigs)
		configGroup.Post("/", rt.requirePerm("system:config:add"), rt.audit("参数管理", model.BusinessTypeCreate), rt.createConfig)
		configGroup.Put("/", rt.requirePerm("system:config:edit"), rt.audit("参数管理", model.BusinessTypeUpdate), rt.updateConfig)
		configGroup.Get("/config_key/:configKey", rt.getConfigValue)
		configGroup.Delete("/refresh_cache", rt.requirePerm("system:config:remove"), rt.audit("参数管理", model.BusinessTypeCleanAll), rt.refreshConfigCache)
		configGroup.Get("/:ids", rt.requirePerm("system:config:query"), rt.getConfig)
		configGroup.Delete("/:ids", rt.requirePerm("system:config:remove"), rt.audit("参数管理", model.BusinessTypeDelete), rt.deleteConfigs)
	}
}

func (rt *Router) listConfigs(c *fiber.Ctx) error {
	query := &model.ConfigQuery{
		PageNum:    queryInt(c, "pageNum"),
		PageSize:   queryInt(c, "pageSize"),
		ConfigName: c.Query("configName"),
		ConfigKey:  c.Query("configKey"),
		ConfigType: c.Query("configType"),
	}
	configs, total, err := rt.Repos.Config.ListConfigs(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, configs, total)
}

func (rt *Router) getConfig(c *fiber.Ctx) error {
	configId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid config id")
	}
	config, err := rt.Repos.Config.GetConfigById(configId)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "config not found")
	}
	return http.WithRepJSON(c, config)
}

// getConfigValue 按键读参数值，走缓存
func (rt *Router) getConfigValue(c *fiber.Ctx) error {
	value, err := rt.Repos.Config.GetValueByKey(c.Context(), c.Params("configKey"))
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "config key not found")
	}
	return http.WithRepJSON(c, value)
}

func (rt *Router) createConfig(c *fiber.Ctx) error {
	var config model.Config
	if err := c.BodyParser(&config); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	unique, err := rt.Repos.Config.CheckConfigKeyUnique(config.ConfigKey, 0)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	if !unique {
		return http.WithRepMsg(c, http.Failed.Code, "config key already exists")
	}
	if err := rt.Repos.Config.CreateConfig(&config); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updateConfig(c *fiber.Ctx) error {
	var config model.Config
	if err := c.BodyParser(&config); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	updates := map[string]any{
		"config_name":  config.ConfigName,
		"config_key":   config.ConfigKey,
		"config_value": config.ConfigValue,
		"config_type":  config.ConfigType,
		"remark":       config.Remark,
	}
	if err := rt.Repos.Config.UpdateConfig(config.ConfigId, updates); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deleteConfigs(c *fiber.Ctx) error {
	configIds, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid config ids")
	}
	if err := rt.Repos.Config.DeleteConfigs(configIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) refreshConfigCache(c *fiber.Ctx) error {
	if err := rt.Repos.Config.RefreshCache(c.Context()); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}
