package main

// @title           SalonSync API
// @version         1.0
// @description     API para la gestión de salones de belleza y spas: citas, ventas, turnos y cortes de caja

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Encabezado de autenticación JWT con esquema Bearer. Ejemplo: "Bearer {token}"
