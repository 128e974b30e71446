package dto

type CrearClienteRequest struct {
	Nombre            string `json:"nombre"             form:"nombre"`
	Apellido          string `json:"apellido"           form:"apellido"`
	CorreoElectronico string `json:"correo_electronico" form:"correo_electronico"`
	Telefono          string `json:"telefono"           form:"telefono"`
}

type ClienteResponse struct {
	ID                string `json:"id"`
	Nombre            string `json:"nombre"`
	Apellido          string `json:"apellido"`
	CorreoElectronico string `json:"correo_electronico"`
	Telefono          string `json:"telefono"`
}
