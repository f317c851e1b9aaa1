package contacts

import (
	"github.com/gin-gonic/gin"
	"github.com/smartzap/server/smartzap/contacts"
)

func RegisterRoutes(router *gin.RouterGroup, contactRepo *contacts.Repository) {
	contactsGroup := router.Group("/contacts")
	{
		contactsGroup.POST("", CreateContactHandler(contactRepo))
		contactsGroup.GET("", ListContactsHandler(contactRepo))
		contactsGroup.GET("/:id", GetContactHandler(contactRepo))
	}
}
