package controller

import "github.com/gofiber/fiber/v2"

const Greeting = "안녕하세요 sbb에 오신것을 환영합니다."

type MainController struct{}

func NewMainController() *MainController {
	return &MainController{}
}

// GET /
func (mc *MainController) Root(c *fiber.Ctx) error {
	return c.Redirect("/question/list", fiber.StatusFound)
}

// GET /sbb
func (mc *MainController) Index(c *fiber.Ctx) error {
	c.Type("txt", "utf-8")
	return c.SendString(Greeting)
}
