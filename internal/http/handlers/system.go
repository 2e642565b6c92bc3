package handlers

import (
	"net/http"

	intconfig "boletera/backend/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "backend boletera en línea"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "base de datos no conectada"})
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM rutas").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fallo la consulta a la base de datos: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexión a base de datos OK", "rutas_registradas": count})
}
