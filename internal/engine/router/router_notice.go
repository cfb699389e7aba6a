package router

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) noticeRouter(r fiber.Router, auth fiber.Handler) {
	noticeGroup := r.Group("/system/notice", auth)
	{
		noticeGroup.Get("/", rt.requirePerm("system:notice:list"), rt.listNotices)
		noticeGroup.Post("/", rt.requirePerm("system:notice:add"), rt.audit("通知公告", model.BusinessTypeCreate), rt.createNotice)
		noticeGroup.Put("/", rt.requirePerm("system:notice:edit"), rt.audit("通知公告", model.BusinessTypeUpdate), rt.updateNotice)
		noticeGroup.Get("/:ids", rt.requirePerm("system:notice:query"), rt.getNotice)
		noticeGroup.Delete("/:ids", rt.requirePerm("system:notice:remove"), rt.audit("通知公告", model.BusinessTypeDelete), rt.deleteNotices)
	}
}

func (rt *Router) listNotices(c *fiber.Ctx) error {
	query := &model.NoticeQuery{
		PageNum:     queryInt(c, "pageNum"),
		PageSize:    queryInt(c, "pageSize"),
		NoticeTitle: c.Query("noticeTitle"),
		NoticeType:  c.Query("noticeType"),
		CreateBy:    c.Query("createBy"),
	}
	notices, total, err := rt.Repos.Notice.ListNotices(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, notices, total)
}

func (rt *Router) getNotice(c *fiber.Ctx) error {
	noticeId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid notice id")
	}
	notice, err := rt.Repos.Notice.GetNoticeById(noticeId)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "notice not found")
	}
	return http.WithRepJSON(c, notice)
}

func (rt *Router) createNotice(c *fiber.Ctx) error {
	var notice model.Notice
	if err := c.BodyParser(&notice); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	claims := currentClaims(c)
	if claims != nil {
		notice.CreateBy = claims.Username
	}
	if err := rt.Repos.Notice.CreateNotice(&notice); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updateNotice(c *fiber.Ctx) error {
	var notice model.Notice
	if err := c.BodyParser(&notice); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	updates := map[string]any{
		"notice_title":   notice.NoticeTitle,
		"notice_content": notice.NoticeContent,
		"notice_type":    notice.NoticeType,
		"status":         notice.Status,
		"remark":         notice.Remark,
	}
	if err := rt.Repos.Notice.UpdateNotice(notice.NoticeId, updates); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deleteNotices(c *fiber.Ctx) error {
	noticeIds, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid notice ids")
	}
	if err := rt.Repos.Notice.DeleteNotices(noticeIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}
