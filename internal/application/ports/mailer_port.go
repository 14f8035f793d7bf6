package ports

import "context"

// Message correo saliente, independiente del transporte.
type Message struct {
	To      string
	Subject string
	Body    string // texto plano
	ReplyTo string // opcional
}

// Mailer define el puerto de salida para la entrega de correo.
// Cualquier adaptador (SMTP local, relay SMTP, SendGrid, Mailgun, log) debe implementar esta interfaz;
// la lógica de negocio nunca decide el transporte, lo elige la configuración al arrancar.
// Deliver devuelve error si el transporte rechazó o no pudo entregar el mensaje.
type Mailer interface {
	Deliver(ctx context.Context, msg Message) error
	// Name identifica el transporte en logs y métricas.
	Name() string
}
